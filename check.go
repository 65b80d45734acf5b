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
	"fmt"
	"io"
	"strings"
)

// ErrFieldCount indicates that a row did not have the expected number of
// fields.
var ErrFieldCount = errors.New("unexpected field count")

// CheckError describes the first invalid row found while validating a
// file. It unwraps to ErrFieldCount.
type CheckError struct {
	// Path is the path of the offending file.
	Path string

	// Line is the 1-based line number of the offending row in the file.
	Line int

	// Fields is the number of fields found.
	Fields int

	// Expected is the number of fields expected.
	Expected int

	// Row is the offending row content.
	Row []string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s: line %d: found %d fields instead of %d: %s",
		e.Path, e.Line, e.Fields, e.Expected, strings.Join(e.Row, ","))
}

func (e *CheckError) Unwrap() error {
	return ErrFieldCount
}

// CheckFile validates that every non-empty row of the CSV file at path has
// exactly expected fields. Validation stops at the first offending row,
// which is reported via a *CheckError carrying the 1-based line number of
// the row in the file. The returned count is the number of rows read.
func CheckFile(path string, expected int) (int, error) {
	r, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	cr := NewReader(r)

	rows := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("error reading %q: %w", path, err)
		}
		rows++

		if IsEmptyRow(row) {
			continue
		}

		if len(row) != expected {
			// Blank lines never produce a record, so the physical line
			// number comes from the reader.
			line, _ := cr.FieldPos(0)
			return rows, &CheckError{
				Path:     path,
				Line:     line,
				Fields:   len(row),
				Expected: expected,
				Row:      row,
			}
		}
	}

	return rows, nil
}
