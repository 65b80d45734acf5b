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
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Field counts for each pipeline stage.
const (
	// RawFields is the field count of raw and reformatted word lists.
	RawFields = 5

	// TranslitFields is the field count of transliterated word lists.
	TranslitFields = 9

	// DictpressFields is the field count of dictpress import rows.
	DictpressFields = 11
)

// ListFiles returns the sorted paths of all CSV files directly under dir.
// Both plain .csv files and gzip compressed .csv.gz files are included.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsCSV(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// IsCSV reports whether name has a recognized CSV file extension.
func IsCSV(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".csv.gz")
}

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (r *gzipReadCloser) Close() error {
	gzErr := r.Reader.Close()
	if err := r.f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", r.f.Name(), err)
	}
	if gzErr != nil {
		return fmt.Errorf("closing gzip stream: %w", gzErr)
	}
	return nil
}

// Open opens the CSV file at path for reading. Files with a .gz extension
// are decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) != ".gz" {
		return f, nil
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}
	return &gzipReadCloser{Reader: gz, f: f}, nil
}

// NewReader returns a CSV reader for r that tolerates rows with varying
// field counts. Field-count policy is applied by callers so that the line
// number of the first offending row can be reported.
func NewReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr
}

// ScrubField removes carriage returns from s and replaces newlines with a
// single space. Fields are scrubbed before writing so that output files
// stay strictly one row per line.
func ScrubField(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", " ")
}

// WriteRows writes rows to w as UTF-8 comma separated values with standard
// quoting and "\n" line termination. All fields are scrubbed of embedded
// line breaks.
func WriteRows(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	for _, row := range rows {
		scrubbed := make([]string, len(row))
		for i, field := range row {
			scrubbed[i] = ScrubField(field)
		}
		if err := cw.Write(scrubbed); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing rows: %w", err)
	}
	return nil
}

// WriteFile writes rows to the CSV file at path, creating parent
// directories as needed.
func WriteFile(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %q: %w", path, err)
	}

	if err := WriteRows(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("error writing %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing %q: %w", path, err)
	}
	return nil
}

// IsEmptyRow reports whether every field of row is blank.
func IsEmptyRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
