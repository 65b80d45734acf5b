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

	"github.com/sourashtra-project/dictcsv"
	"github.com/sourashtra-project/dictcsv/wordlist"
)

var formatCommand = &cli.Command{
	Name:      "format",
	Usage:     "Reverse raw export columns into word list order",
	ArgsUsage: "DIR [OUT]",
	Description: `Raw spreadsheet exports carry word list columns in reverse order.
Reverse them into the standard 5-column layout and write each file to
OUT (default "processed") named after its subject. Files that do not
follow the raw export naming convention are skipped.`,
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 || c.NArg() > 2 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrDictutil)
		}

		outDir := c.Args().Get(1)
		if outDir == "" {
			outDir = "processed"
		}

		files, err := inputFiles(c.Args().Get(0), "")
		if err != nil {
			return err
		}

		tbl := table.New("File", "Output", "Rows")
		for _, path := range files {
			subject, ok := wordlist.Subject(filepath.Base(path))
			if !ok {
				fmt.Printf("skipping %s: not a raw export\n", filepath.Base(path))
				continue
			}

			rows, err := readRows(path)
			if err != nil {
				tbl.Print()
				return fmt.Errorf("%w: %w", ErrDictutil, err)
			}
			for i := range rows {
				rows[i] = wordlist.Reverse(rows[i])
			}

			outPath := filepath.Join(outDir, subject+".csv")
			if err := dictcsv.WriteFile(outPath, rows); err != nil {
				tbl.Print()
				return fmt.Errorf("%w: %w", ErrDictutil, err)
			}
			tbl.AddRow(filepath.Base(path), filepath.Base(outPath), len(rows))
		}
		tbl.Print()
		return nil
	},
}
