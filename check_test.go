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
	"errors"
	"testing"

	"github.com/sourashtra-project/dictcsv/internal/testutil"
)

func TestCheckFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rows     [][]string
		expected int

		rowCount int
		errLine  int
		errFound int
	}{
		{
			name: "all valid",
			rows: [][]string{
				{"a", "b", "c", "d", "e"},
				{"f", "g", "h", "i", "j"},
			},
			expected: 5,
			rowCount: 2,
		},
		{
			name: "empty rows skipped",
			rows: [][]string{
				{"a", "b", "c", "d", "e"},
				{"", "", "", "", ""},
				{"f", "g", "h", "i", "j"},
			},
			expected: 5,
			rowCount: 3,
		},
		{
			name: "short row reported with line number",
			rows: [][]string{
				{"a", "b", "c", "d", "e"},
				{"", "", "", "", ""},
				{"f", "g", "h"},
				{"k", "l", "m", "n", "o"},
			},
			expected: 5,
			rowCount: 3,
			errLine:  3,
			errFound: 3,
		},
		{
			name: "long row reported with line number",
			rows: [][]string{
				{"a", "b", "c", "d", "e", "x"},
			},
			expected: 5,
			rowCount: 1,
			errLine:  1,
			errFound: 6,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.WriteCSV(t, t.TempDir(), "words.csv", test.rows)

			rows, err := CheckFile(path, test.expected)
			if got, want := rows, test.rowCount; got != want {
				t.Errorf("row count; want: %d, got: %d", want, got)
			}

			if test.errLine == 0 {
				if err != nil {
					t.Fatalf("CheckFile: %v", err)
				}
				return
			}

			if !errors.Is(err, ErrFieldCount) {
				t.Fatalf("CheckFile; want: %v, got: %v", ErrFieldCount, err)
			}
			var checkErr *CheckError
			if !errors.As(err, &checkErr) {
				t.Fatalf("CheckFile; want *CheckError, got: %v", err)
			}
			if got, want := checkErr.Line, test.errLine; got != want {
				t.Errorf("line; want: %d, got: %d", want, got)
			}
			if got, want := checkErr.Fields, test.errFound; got != want {
				t.Errorf("fields; want: %d, got: %d", want, got)
			}
		})
	}
}

func TestCheckFile_blankLines(t *testing.T) {
	t.Parallel()

	// A blank line produces no record but still counts toward the line
	// number of the bad row.
	path := testutil.WriteRaw(t, t.TempDir(), "words.csv",
		"a,b,c,d,e\n\nf,g,h,i\n")

	rows, err := CheckFile(path, 5)
	if got, want := rows, 2; got != want {
		t.Errorf("row count; want: %d, got: %d", want, got)
	}

	var checkErr *CheckError
	if !errors.As(err, &checkErr) {
		t.Fatalf("CheckFile; want *CheckError, got: %v", err)
	}
	if got, want := checkErr.Line, 3; got != want {
		t.Errorf("line; want: %d, got: %d", want, got)
	}
}

func TestCheckFile_gzip(t *testing.T) {
	t.Parallel()

	path := testutil.WriteCSVGz(t, t.TempDir(), "words.csv.gz", [][]string{
		{"a", "b", "c", "d", "e"},
		{"f", "g"},
	})

	_, err := CheckFile(path, 5)
	var checkErr *CheckError
	if !errors.As(err, &checkErr) {
		t.Fatalf("CheckFile; want *CheckError, got: %v", err)
	}
	if got, want := checkErr.Line, 2; got != want {
		t.Errorf("line; want: %d, got: %d", want, got)
	}
}
