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

package dictpress

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordRE extracts word tokens from free text. \p{L}\p{N} rather than \w
// so that Tamil and Saurashtra script words are kept whole.
var wordRE = regexp.MustCompile(`[\p{L}\p{N}]+`)

// tokenSet accumulates unique search tokens with stable, insertion
// ordered weights.
type tokenSet struct {
	weights map[string]int
	tokens  []string
	next    int
}

func newTokenSet() *tokenSet {
	return &tokenSet{
		weights: map[string]int{},
		next:    1,
	}
}

// cleanToken lowercases tok and strips everything that is not a Unicode
// letter or digit. Tokens of one character or less are dropped.
func cleanToken(tok string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(tok)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if utf8.RuneCountInString(cleaned) <= 1 {
		return ""
	}
	return cleaned
}

// add records tok with the next weight if it cleans to a new token.
func (t *tokenSet) add(tok string) {
	cleaned := cleanToken(tok)
	if cleaned == "" {
		return
	}
	if _, ok := t.weights[cleaned]; ok {
		return
	}
	t.weights[cleaned] = t.next
	t.tokens = append(t.tokens, cleaned)
	t.next++
}

// String formats the set in text-search engine token/weight format:
// 'token':weight pairs joined by spaces, in weight order.
func (t *tokenSet) String() string {
	pairs := make([]string, 0, len(t.tokens))
	for _, tok := range t.tokens {
		pairs = append(pairs, fmt.Sprintf("'%s':%d", tok, t.weights[tok]))
	}
	return strings.Join(pairs, " ")
}

// Tokens builds the explicit tsvector token list for a main entry. Token
// weights follow insertion order: the Sourashtra word first, then
// pronunciations, English meaning words longer than 2 characters, Tamil
// meaning words longer than 1 character, and finally up to 3 related
// concepts from enrichment.
func Tokens(word string, pronunciations []string, englishMeaning, tamilMeaning string, concepts []string) string {
	set := newTokenSet()

	if word != "" {
		set.add(word)
	}

	for _, p := range pronunciations {
		if strings.TrimSpace(p) != "" {
			set.add(p)
		}
	}

	for _, w := range wordRE.FindAllString(strings.ToLower(englishMeaning), -1) {
		if utf8.RuneCountInString(w) > 2 {
			set.add(w)
		}
	}

	for _, w := range wordRE.FindAllString(strings.ToLower(tamilMeaning), -1) {
		// Short Tamil words can still be meaningful; keep 2-character
		// tokens here.
		if utf8.RuneCountInString(w) > 1 {
			set.add(w)
		}
	}

	if len(concepts) > 3 {
		concepts = concepts[:3]
	}
	for _, concept := range concepts {
		for _, w := range strings.Fields(concept) {
			set.add(w)
		}
	}

	return set.String()
}
