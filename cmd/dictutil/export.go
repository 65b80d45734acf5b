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

package main

import (
	"fmt"
	"path/filepath"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/sourashtra-project/dictcsv/sheet"
)

var exportCommand = &cli.Command{
	Name:      "export",
	Usage:     "Export spreadsheet workbook sheets to CSV files",
	ArgsUsage: "FILE [OUT]",
	Description: `Export every sheet of an .xlsx workbook to a CSV file in OUT (default
the current directory).`,
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 || c.NArg() > 2 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrDictutil)
		}

		outDir := c.Args().Get(1)
		if outDir == "" {
			outDir = "."
		}

		results, err := sheet.Export(c.Args().Get(0), outDir)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDictutil, err)
		}

		tbl := table.New("Sheet", "Output", "Rows")
		for _, r := range results {
			tbl.AddRow(r.Sheet, filepath.Base(r.Path), r.Rows)
		}
		tbl.Print()
		return nil
	},
}
