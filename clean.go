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

package dictcsv

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/sourashtra-project/dictcsv/internal/folding"
)

// bracketRE matches a clarification term in brackets, like "(adj)" or
// "(noun)", together with any surrounding whitespace. Nested brackets do
// not occur in the dataset; an unmatched "(" is left alone.
var bracketRE = regexp.MustCompile(`\s*\([^)]*\)\s*`)

// bracketTermRE matches the bracket term itself, without surrounding
// whitespace. Used for reporting which terms were removed.
var bracketTermRE = regexp.MustCompile(`\([^)]*\)`)

// HasBracketTerm reports whether any field of row contains a bracket term.
func HasBracketTerm(row []string) bool {
	for _, field := range row {
		if bracketRE.MatchString(field) {
			return true
		}
	}
	return false
}

// BracketTerms returns all bracket terms found in the fields of row.
func BracketTerms(row []string) []string {
	var terms []string
	for _, field := range row {
		terms = append(terms, bracketTermRE.FindAllString(field, -1)...)
	}
	return terms
}

// CleanField removes all bracket terms from s and folds the remaining
// whitespace. Cleaning is idempotent.
func CleanField(s string) string {
	return folding.Fold(bracketRE.ReplaceAllString(s, ""))
}

// CleanRow returns row with every field cleaned of bracket terms.
func CleanRow(row []string) []string {
	cleaned := make([]string, len(row))
	for i, field := range row {
		cleaned[i] = CleanField(field)
	}
	return cleaned
}

// Change records a single cleaned line of a file.
type Change struct {
	// Line is the 1-based line number of the change.
	Line int

	// Before is the original raw line without its line terminator.
	Before string

	// After is the cleaned line without its line terminator.
	After string

	// Terms are the bracket terms that were removed.
	Terms []string
}

// CleanResult summarizes cleanup of a single file.
type CleanResult struct {
	// Lines is the number of lines processed.
	Lines int

	// TermsRemoved is the total number of bracket terms removed.
	TermsRemoved int

	// Changes lists the lines that were modified.
	Changes []Change
}

// CleanFile removes bracket terms from the CSV file at inputPath and
// writes the result to outputPath. Lines without bracket terms are copied
// through byte-for-byte; only modified lines are re-encoded. When dryRun
// is true, or when no line changed, nothing is written.
func CleanFile(inputPath, outputPath string, dryRun bool) (*CleanResult, error) {
	r, err := Open(inputPath)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(r)
	if closeErr := r.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", inputPath, err)
	}
	content := string(raw)

	rawLines := splitKeepEnds(content)

	rows, err := NewReader(strings.NewReader(content)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", inputPath, err)
	}

	result := &CleanResult{}
	var out []string

	// Rows and raw lines correspond one to one because fields are scrubbed
	// of embedded line breaks when files are written.
	n := len(rawLines)
	if len(rows) < n {
		n = len(rows)
	}

	for i := 0; i < n; i++ {
		result.Lines++
		rawLine := rawLines[i]
		row := rows[i]

		if IsEmptyRow(row) || !HasBracketTerm(row) {
			out = append(out, rawLine)
			continue
		}

		terms := BracketTerms(row)
		result.TermsRemoved += len(terms)

		var buf bytes.Buffer
		if err := WriteRows(&buf, [][]string{CleanRow(row)}); err != nil {
			return nil, err
		}
		cleanedLine := buf.String()

		result.Changes = append(result.Changes, Change{
			Line:   i + 1,
			Before: strings.TrimRight(rawLine, "\r\n"),
			After:  strings.TrimRight(cleanedLine, "\r\n"),
			Terms:  terms,
		})
		out = append(out, cleanedLine)
	}
	out = append(out, rawLines[n:]...)

	if !dryRun && len(result.Changes) > 0 {
		if err := os.WriteFile(outputPath, []byte(strings.Join(out, "")), 0o644); err != nil {
			return nil, fmt.Errorf("error writing %q: %w", outputPath, err)
		}
	}

	return result, nil
}

// splitKeepEnds splits content into lines, keeping the line terminators.
func splitKeepEnds(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
