// Copyright 2025 The Sourashtra Dictionary Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding provides text folding transforms used to normalize CSV
// field content.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// WhitespaceFolder performs whitespace folding on the input. It removes
// whitespace from the beginning and end of the input and replaces every
// internal whitespace span with a single ASCII space rune. Dictionary
// fields are folded after bracket terms are removed so that cleanup never
// leaves doubled or dangling spaces behind.
type WhitespaceFolder struct {
	// seen is true once a non-whitespace rune has been emitted.
	seen bool

	// space is true while a separator space is owed before the next
	// non-whitespace rune.
	space bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF {
			err = transform.ErrShortSrc
			return
		}

		if unicode.IsSpace(r) {
			// Leading whitespace (seen == false) never owes a separator;
			// a trailing span is simply never paid out.
			w.space = w.seen
			nSrc += size
			continue
		}

		// NOTE: utf8.RuneLen rather than size because r could be
		// utf8.RuneError, which decodes with size 1 but encodes as 3 bytes.
		need := utf8.RuneLen(r)
		if w.space {
			need++
		}
		if nDst+need > len(dst) {
			err = transform.ErrShortDst
			return
		}

		if w.space {
			dst[nDst] = ' '
			nDst++
			w.space = false
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		w.seen = true
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}

// Fold trims s and collapses every internal whitespace span to a single
// space.
func Fold(s string) string {
	folded, _, err := transform.String(&WhitespaceFolder{}, s)
	if err != nil {
		// The folder never fails on complete input.
		return s
	}
	return folded
}
