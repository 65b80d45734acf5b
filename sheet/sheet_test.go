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

package sheet

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/sourashtra-project/dictcsv/internal/testutil"
)

func writeWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Animals"); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}
	cells := map[string]string{
		"A1": "tam meaning", "B1": "eng meaning", "C1": "tam", "D1": "hin", "E1": "word",
		"A2": "naai", "B2": "dog", "C2": "naai-tam", "D2": "kutta", "E2": "ꢥꢬ",
	}
	for cell, value := range cells {
		if err := f.SetCellValue("Animals", cell, value); err != nil {
			t.Fatalf("SetCellValue: %v", err)
		}
	}

	if _, err := f.NewSheet("Body Parts"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	if err := f.SetCellValue("Body Parts", "A1", "head"); err != nil {
		t.Fatalf("SetCellValue: %v", err)
	}

	// An empty sheet is skipped on export.
	if _, err := f.NewSheet("Empty"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
}

func TestExport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	workbookPath := filepath.Join(dir, "wordlist.xlsx")
	writeWorkbook(t, workbookPath)

	outDir := filepath.Join(dir, "out")
	results, err := Export(workbookPath, outDir)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if got, want := len(results), 2; got != want {
		t.Fatalf("results; want: %d, got: %d", want, got)
	}

	if got, want := results[0].Sheet, "Animals"; got != want {
		t.Errorf("sheet; want: %q, got: %q", want, got)
	}
	if got, want := filepath.Base(results[0].Path), "wordlist_Animals.csv"; got != want {
		t.Errorf("path; want: %q, got: %q", want, got)
	}
	if got, want := results[0].Rows, 2; got != want {
		t.Errorf("rows; want: %d, got: %d", want, got)
	}

	want := [][]string{
		{"tam meaning", "eng meaning", "tam", "hin", "word"},
		{"naai", "dog", "naai-tam", "kutta", "ꢥꢬ"},
	}
	got := testutil.ReadCSV(t, results[0].Path)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows (-want, +got):\n%s", diff)
	}

	// Spaces in sheet names are normalized in output file names.
	if got, want := filepath.Base(results[1].Path), "wordlist_Body-Parts.csv"; got != want {
		t.Errorf("path; want: %q, got: %q", want, got)
	}
}

func TestExport_missingFile(t *testing.T) {
	t.Parallel()

	if _, err := Export(filepath.Join(t.TempDir(), "nope.xlsx"), t.TempDir()); err == nil {
		t.Errorf("Export: expected error, got nil")
	}
}
