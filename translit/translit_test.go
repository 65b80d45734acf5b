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

package translit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string

		roman string
		hk    string
		iast  string
		ipa   string
	}{
		{
			name:  "inherent vowels",
			text:  "ꢥꢬ",
			roman: "nara",
			hk:    "nara",
			iast:  "nara",
			ipa:   "nəɾə",
		},
		{
			name:  "virama suppresses inherent vowel",
			text:  "ꢥ꣄",
			roman: "n",
			hk:    "n",
			iast:  "n",
			ipa:   "n",
		},
		{
			name:  "vowel sign replaces inherent vowel",
			text:  "ꢥꢵ",
			roman: "naa",
			hk:    "nA",
			iast:  "nā",
			ipa:   "naː",
		},
		{
			name:  "independent vowel",
			text:  "ꢂ",
			roman: "a",
			hk:    "a",
			iast:  "a",
			ipa:   "ə",
		},
		{
			name:  "anusvara after consonant",
			text:  "ꢥꢀ",
			roman: "nam",
			hk:    "naM",
			iast:  "naṃ",
			ipa:   "nəm",
		},
		{
			name:  "haaru aspirates",
			text:  "ꢒꢴ",
			roman: "kha",
			hk:    "kha",
			iast:  "kha",
			ipa:   "kʰə",
		},
		{
			name:  "digits",
			text:  "꣐꣑",
			roman: "01",
			hk:    "01",
			iast:  "01",
			ipa:   "01",
		},
		{
			name:  "space between words",
			text:  "ꢥꢬ ꢥ",
			roman: "nara na",
			hk:    "nara na",
			iast:  "nara na",
			ipa:   "nəɾə nə",
		},
		{
			name:  "non-saurashtra passthrough",
			text:  "abc",
			roman: "abc",
			hk:    "abc",
			iast:  "abc",
			ipa:   "abc",
		},
		{
			name:  "surrounding whitespace trimmed",
			text:  " ꢥ ",
			roman: "na",
			hk:    "na",
			iast:  "na",
			ipa:   "nə",
		},
		{
			name: "empty",
			text: "",
		},
		{
			name: "blank",
			text: "   ",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			want := Word{
				RomanReadable: test.roman,
				HarvardKyoto:  test.hk,
				IAST:          test.iast,
				IPA:           test.ipa,
			}
			got := Transliterate(test.text)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Transliterate (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSchemeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		scheme   Scheme
		expected string
	}{
		{scheme: RomanReadable, expected: "RomanReadable"},
		{scheme: HarvardKyoto, expected: "HK"},
		{scheme: IAST, expected: "IAST"},
		{scheme: IPA, expected: "IPA"},
		{scheme: Scheme(99), expected: "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			t.Parallel()

			if got, want := test.scheme.String(), test.expected; got != want {
				t.Errorf("String; want: %q, got: %q", want, got)
			}
		})
	}
}

func TestExpandRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  []string

		expected []string
	}{
		{
			name: "word list row",
			row:  []string{"ꢥꢬ", "hin", "tam", "man", "manidan"},
			expected: []string{
				"ꢥꢬ", "hin", "tam",
				"nara", "nara", "nara", "nəɾə",
				"man", "manidan",
			},
		},
		{
			name:     "wrong field count passes through",
			row:      []string{"ꢥꢬ", "hin"},
			expected: []string{"ꢥꢬ", "hin"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := ExpandRow(test.row)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("ExpandRow (-want, +got):\n%s", diff)
			}
		})
	}
}
