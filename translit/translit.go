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

// Package translit transliterates Saurashtra script text (Unicode block
// U+A880..U+A8D9) into romanized phonetic encodings.
//
// The script is an abugida: a consonant letter carries an inherent "a"
// vowel unless it is followed by a dependent vowel sign or the virama,
// which suppresses the vowel. Transliteration walks the NFC-normalized
// input one rune at a time, tracking whether a consonant's inherent vowel
// is still pending. Runes outside the Saurashtra block pass through
// unchanged.
package translit

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Scheme is a romanization scheme.
type Scheme int

const (
	// RomanReadable is a simplified scheme for lay readers. It drops
	// diacritics and uses digraphs like "aa" and "sh".
	RomanReadable Scheme = iota

	// HarvardKyoto is the ASCII-only Harvard-Kyoto convention.
	HarvardKyoto

	// IAST is the International Alphabet of Sanskrit Transliteration.
	IAST

	// IPA is the International Phonetic Alphabet.
	IPA
)

// String implements fmt.Stringer.
func (s Scheme) String() string {
	switch s {
	case RomanReadable:
		return "RomanReadable"
	case HarvardKyoto:
		return "HK"
	case IAST:
		return "IAST"
	case IPA:
		return "IPA"
	}
	return "unknown"
}

// Schemes lists all schemes in the column order of transliterated word
// lists.
var Schemes = []Scheme{RomanReadable, HarvardKyoto, IAST, IPA}

// Word holds the transliterations of a single Saurashtra word.
type Word struct {
	RomanReadable string
	HarvardKyoto  string
	IAST          string
	IPA           string
}

// mapping is the rendering of one Saurashtra sound in each scheme.
type mapping struct {
	roman string
	hk    string
	iast  string
	ipa   string
}

func (m mapping) get(s Scheme) string {
	switch s {
	case RomanReadable:
		return m.roman
	case HarvardKyoto:
		return m.hk
	case IAST:
		return m.iast
	case IPA:
		return m.ipa
	}
	return ""
}

// Saurashtra script code points.
const (
	runeAnusvara    = 'ꢀ'
	runeVisarga     = 'ꢁ'
	runeHaaru       = 'ꢴ'
	runeVirama      = '꣄'
	runeCandrabindu = 'ꣅ'
	runeDanda       = '꣎'
	runeDoubleDanda = '꣏'
	runeDigitZero   = '꣐'
	runeDigitNine   = '꣙'
)

// inherent is the inherent vowel emitted after a bare consonant.
var inherent = mapping{roman: "a", hk: "a", iast: "a", ipa: "ə"}

// vowels maps independent vowel letters (U+A882..U+A891) to their
// renderings. Dependent vowel signs (U+A8B5..U+A8C3) share the same
// values, offset by the missing short "a".
var vowels = map[rune]mapping{
	'ꢂ': {roman: "a", hk: "a", iast: "a", ipa: "ə"},
	'ꢃ': {roman: "aa", hk: "A", iast: "ā", ipa: "aː"},
	'ꢄ': {roman: "i", hk: "i", iast: "i", ipa: "i"},
	'ꢅ': {roman: "ee", hk: "I", iast: "ī", ipa: "iː"},
	'ꢆ': {roman: "u", hk: "u", iast: "u", ipa: "u"},
	'ꢇ': {roman: "oo", hk: "U", iast: "ū", ipa: "uː"},
	'ꢈ': {roman: "ru", hk: "R", iast: "ṛ", ipa: "r̩"},
	'ꢉ': {roman: "ruu", hk: "RR", iast: "ṝ", ipa: "r̩ː"},
	'ꢊ': {roman: "lu", hk: "lR", iast: "ḷ", ipa: "l̩"},
	'ꢋ': {roman: "luu", hk: "lRR", iast: "ḹ", ipa: "l̩ː"},
	'ꢌ': {roman: "e", hk: "e", iast: "e", ipa: "e"},
	'ꢍ': {roman: "e", hk: "E", iast: "ē", ipa: "eː"},
	'ꢎ': {roman: "ai", hk: "ai", iast: "ai", ipa: "ai"},
	'ꢏ': {roman: "o", hk: "o", iast: "o", ipa: "o"},
	'ꢐ': {roman: "o", hk: "O", iast: "ō", ipa: "oː"},
	'ꢑ': {roman: "au", hk: "au", iast: "au", ipa: "au"},
}

// vowelSignOffset converts a dependent vowel sign code point to its
// independent vowel letter. Signs start at AA (U+A8B5), letters at
// AA (U+A883).
const vowelSignFirst, vowelSignLast = 'ꢵ', 'ꣃ'

func vowelForSign(r rune) (mapping, bool) {
	if r < vowelSignFirst || r > vowelSignLast {
		return mapping{}, false
	}
	m, ok := vowels['ꢃ'+(r-vowelSignFirst)]
	return m, ok
}

// consonants maps consonant letters (U+A892..U+A8B3) to their base
// renderings without the inherent vowel.
var consonants = map[rune]mapping{
	'ꢒ': {roman: "k", hk: "k", iast: "k", ipa: "k"},
	'ꢓ': {roman: "kh", hk: "kh", iast: "kh", ipa: "kʰ"},
	'ꢔ': {roman: "g", hk: "g", iast: "g", ipa: "g"},
	'ꢕ': {roman: "gh", hk: "gh", iast: "gh", ipa: "gʱ"},
	'ꢖ': {roman: "ng", hk: "G", iast: "ṅ", ipa: "ŋ"},
	'ꢗ': {roman: "ch", hk: "c", iast: "c", ipa: "tʃ"},
	'ꢘ': {roman: "chh", hk: "ch", iast: "ch", ipa: "tʃʰ"},
	'ꢙ': {roman: "j", hk: "j", iast: "j", ipa: "dʒ"},
	'ꢚ': {roman: "jh", hk: "jh", iast: "jh", ipa: "dʒʱ"},
	'ꢛ': {roman: "ny", hk: "J", iast: "ñ", ipa: "ɲ"},
	'ꢜ': {roman: "t", hk: "T", iast: "ṭ", ipa: "ʈ"},
	'ꢝ': {roman: "th", hk: "Th", iast: "ṭh", ipa: "ʈʰ"},
	'ꢞ': {roman: "d", hk: "D", iast: "ḍ", ipa: "ɖ"},
	'ꢟ': {roman: "dh", hk: "Dh", iast: "ḍh", ipa: "ɖʱ"},
	'ꢠ': {roman: "n", hk: "N", iast: "ṇ", ipa: "ɳ"},
	'ꢡ': {roman: "t", hk: "t", iast: "t", ipa: "t̪"},
	'ꢢ': {roman: "th", hk: "th", iast: "th", ipa: "t̪ʰ"},
	'ꢣ': {roman: "d", hk: "d", iast: "d", ipa: "d̪"},
	'ꢤ': {roman: "dh", hk: "dh", iast: "dh", ipa: "d̪ʱ"},
	'ꢥ': {roman: "n", hk: "n", iast: "n", ipa: "n"},
	'ꢦ': {roman: "p", hk: "p", iast: "p", ipa: "p"},
	'ꢧ': {roman: "ph", hk: "ph", iast: "ph", ipa: "pʰ"},
	'ꢨ': {roman: "b", hk: "b", iast: "b", ipa: "b"},
	'ꢩ': {roman: "bh", hk: "bh", iast: "bh", ipa: "bʱ"},
	'ꢪ': {roman: "m", hk: "m", iast: "m", ipa: "m"},
	'ꢫ': {roman: "y", hk: "y", iast: "y", ipa: "j"},
	'ꢬ': {roman: "r", hk: "r", iast: "r", ipa: "ɾ"},
	'ꢭ': {roman: "l", hk: "l", iast: "l", ipa: "l"},
	'ꢮ': {roman: "v", hk: "v", iast: "v", ipa: "ʋ"},
	'ꢯ': {roman: "sh", hk: "z", iast: "ś", ipa: "ɕ"},
	'ꢰ': {roman: "sh", hk: "S", iast: "ṣ", ipa: "ʂ"},
	'ꢱ': {roman: "s", hk: "s", iast: "s", ipa: "s"},
	'ꢲ': {roman: "h", hk: "h", iast: "h", ipa: "ɦ"},
	'ꢳ': {roman: "l", hk: "L", iast: "ḷ", ipa: "ɭ"},
}

// signs maps standalone signs to their renderings.
var signs = map[rune]mapping{
	runeAnusvara:    {roman: "m", hk: "M", iast: "ṃ", ipa: "m"},
	runeVisarga:     {roman: "h", hk: "H", iast: "ḥ", ipa: "h"},
	runeCandrabindu: {roman: "n", hk: "~", iast: "m̐", ipa: "n"},
	runeDanda:       {roman: ".", hk: ".", iast: ".", ipa: "."},
	runeDoubleDanda: {roman: "..", hk: "..", iast: "..", ipa: ".."},
}

// To transliterates text into the given scheme. Blank input yields the
// empty string.
func To(scheme Scheme, text string) string {
	text = norm.NFC.String(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	var b strings.Builder

	// pending is true while a consonant's inherent vowel has not yet been
	// emitted or suppressed.
	pending := false
	flush := func() {
		if pending {
			b.WriteString(inherent.get(scheme))
			pending = false
		}
	}

	for _, r := range text {
		if m, ok := consonants[r]; ok {
			flush()
			b.WriteString(m.get(scheme))
			pending = true
			continue
		}
		if r == runeHaaru {
			// Haaru aspirates the preceding consonant; the inherent vowel
			// stays pending.
			if scheme == IPA {
				b.WriteString("ʰ")
			} else {
				b.WriteString("h")
			}
			continue
		}
		if r == runeVirama {
			pending = false
			continue
		}
		if m, ok := vowelForSign(r); ok {
			b.WriteString(m.get(scheme))
			pending = false
			continue
		}
		if m, ok := vowels[r]; ok {
			flush()
			b.WriteString(m.get(scheme))
			continue
		}
		if m, ok := signs[r]; ok {
			flush()
			b.WriteString(m.get(scheme))
			continue
		}
		if r >= runeDigitZero && r <= runeDigitNine {
			flush()
			b.WriteRune('0' + (r - runeDigitZero))
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()

	return b.String()
}

// Transliterate renders word in every scheme.
func Transliterate(word string) Word {
	return Word{
		RomanReadable: To(RomanReadable, word),
		HarvardKyoto:  To(HarvardKyoto, word),
		IAST:          To(IAST, word),
		IPA:           To(IPA, word),
	}
}

// ExpandRow converts a 5-column word list row to the 9-column
// transliterated layout, inserting the four scheme renderings of the
// Sourashtra word after the Tamil pronunciation. Rows that do not have
// exactly 5 columns are returned unchanged.
func ExpandRow(row []string) []string {
	if len(row) != 5 {
		return row
	}

	w := Transliterate(row[0])
	return []string{
		row[0], row[1], row[2],
		w.RomanReadable, w.HarvardKyoto, w.IAST, w.IPA,
		row[3], row[4],
	}
}
