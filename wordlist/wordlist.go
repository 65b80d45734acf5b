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

// Package wordlist implements operations on the 5-column word list files
// of the Sourashtra dictionary dataset.
//
// The columns of a reformatted word list are, in order: Sourashtra word,
// Hindi pronunciation, Tamil pronunciation, English meaning, Tamil
// meaning. Raw spreadsheet exports carry the same columns in the opposite
// order and are brought into this layout by Reverse.
package wordlist

import (
	"regexp"
	"strings"
)

// Fields is the field count of word list rows.
const Fields = 5

// rawNameRE matches the file naming convention of raw spreadsheet
// exports, e.g. "Sourashtra-CIIL-List-Original_Adjectives.csv".
var rawNameRE = regexp.MustCompile(`^Sourashtra-CIIL-List-Original_(.+)\.csv(\.gz)?$`)

// Subject extracts the subject name from a raw export file name. It
// returns false if the name does not follow the raw export convention.
func Subject(name string) (string, bool) {
	m := rawNameRE.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Reverse returns row with its columns in reverse order. Raw exports
// store columns as c5,c4,c3,c2,c1; reversing twice returns the original
// row.
func Reverse(row []string) []string {
	reversed := make([]string, len(row))
	for i, field := range row {
		reversed[len(row)-1-i] = field
	}
	return reversed
}

// splitTerms splits a field into its component terms. Terms are separated
// by "/" or "," and surrounding whitespace is trimmed. A blank field
// yields a single empty term.
func splitTerms(field string) []string {
	field = strings.TrimSpace(field)
	if field == "" {
		return []string{""}
	}

	var terms []string
	for _, part := range strings.Split(field, "/") {
		for _, term := range strings.Split(part, ",") {
			terms = append(terms, strings.TrimSpace(term))
		}
	}
	return terms
}

// padTerms extends terms to length n by repeating the last term.
func padTerms(terms []string, n int) []string {
	if len(terms) == 0 {
		return make([]string, n)
	}
	for len(terms) < n {
		terms = append(terms, terms[len(terms)-1])
	}
	return terms
}

// Split fans out a row whose first three columns contain composite terms.
// Each of c1, c2 and c3 is split on "/" and ","; shorter term lists are
// padded by repeating their last term, and one row per term position is
// returned with c4 and c5 copied. Rows without composite terms, and rows
// that do not have exactly 5 columns, are returned unchanged as a single
// row.
func Split(row []string) [][]string {
	if len(row) != Fields {
		return [][]string{row}
	}

	c1 := splitTerms(row[0])
	c2 := splitTerms(row[1])
	c3 := splitTerms(row[2])

	n := len(c1)
	if len(c2) > n {
		n = len(c2)
	}
	if len(c3) > n {
		n = len(c3)
	}
	if n == 1 {
		return [][]string{row}
	}

	c1 = padTerms(c1, n)
	c2 = padTerms(c2, n)
	c3 = padTerms(c3, n)

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, []string{c1[i], c2[i], c3[i], row[3], row[4]})
	}
	return rows
}
