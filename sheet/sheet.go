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

// Package sheet exports spreadsheet workbooks to per-sheet CSV files.
package sheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sourashtra-project/dictcsv"
)

// Result describes one exported sheet.
type Result struct {
	// Sheet is the sheet name in the workbook.
	Sheet string

	// Path is the written CSV file.
	Path string

	// Rows is the number of rows written.
	Rows int
}

// Export writes every sheet of the workbook at workbookPath to a CSV file
// under outputDir. Each file is named <workbook base>_<sheet>.csv, with
// spaces in sheet names normalized to hyphens. Empty sheets are skipped.
func Export(workbookPath, outputDir string) ([]Result, error) {
	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", workbookPath, err)
	}
	defer f.Close()

	base := strings.TrimSuffix(filepath.Base(workbookPath), filepath.Ext(workbookPath))

	var results []Result
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		name := fmt.Sprintf("%s_%s.csv", base, strings.ReplaceAll(sheet, " ", "-"))
		path := filepath.Join(outputDir, name)
		if err := dictcsv.WriteFile(path, rows); err != nil {
			return nil, err
		}

		results = append(results, Result{
			Sheet: sheet,
			Path:  path,
			Rows:  len(rows),
		})
	}

	return results, nil
}
