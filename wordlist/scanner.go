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

package wordlist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/sourashtra-project/dictcsv"
)

// Scanner scans the rows of a word list file from start to end, skipping
// empty rows.
type Scanner struct {
	r  io.ReadCloser
	cr *csv.Reader

	row  []string
	line int
	err  error
}

// NewScanner returns a new Scanner reading from r. The Scanner assumes
// ownership of the reader and should be closed with the Close method.
func NewScanner(r io.ReadCloser) *Scanner {
	return &Scanner{
		r:  r,
		cr: dictcsv.NewReader(r),
	}
}

// NewScannerFromPath returns a new Scanner for the CSV file at path.
// Gzip compressed files are decompressed transparently.
func NewScannerFromPath(path string) (*Scanner, error) {
	f, err := dictcsv.Open(path)
	if err != nil {
		return nil, err
	}
	return NewScanner(f), nil
}

// Scan advances the scanner to the next non-empty row. It returns false
// if the scan stops either by reaching the end of the file or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for {
		row, err := s.cr.Read()
		if errors.Is(err, io.EOF) {
			return false
		}
		if err != nil {
			s.err = err
			return false
		}
		s.line, _ = s.cr.FieldPos(0)
		if dictcsv.IsEmptyRow(row) {
			continue
		}
		s.row = row
		return true
	}
}

// Row returns the current row.
func (s *Scanner) Row() []string {
	return s.row
}

// Line returns the 1-based line number of the current row in the file.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing word list: %w", err)
	}
	return nil
}
