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
	"log"
	"path/filepath"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/sourashtra-project/dictcsv"
	"github.com/sourashtra-project/dictcsv/translit"
	"github.com/sourashtra-project/dictcsv/wordlist"
)

var translitCommand = &cli.Command{
	Name:      "translit",
	Usage:     "Add romanized transliteration columns",
	ArgsUsage: "DIR [OUT]",
	Description: `Expand 5-column word list rows to the 9-column layout by inserting the
RomanReadable, Harvard-Kyoto, IAST and IPA renderings of the Sourashtra
word. Files are rewritten in place when OUT is omitted.`,
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 || c.NArg() > 2 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrDictutil)
		}

		outDir := c.Args().Get(1)

		files, err := inputFiles(c.Args().Get(0), "")
		if err != nil {
			return err
		}

		tbl := table.New("File", "Rows")
		for _, path := range files {
			rows, err := readRows(path)
			if err != nil {
				tbl.Print()
				return fmt.Errorf("%w: %w", ErrDictutil, err)
			}

			out := make([][]string, 0, len(rows))
			for i, row := range rows {
				if len(row) != wordlist.Fields {
					log.Printf("warning: %s row %d has %d fields, expected %d",
						filepath.Base(path), i+1, len(row), wordlist.Fields)
				}
				out = append(out, translit.ExpandRow(row))
			}

			outPath := path
			if outDir != "" {
				outPath = filepath.Join(outDir, filepath.Base(path))
			}
			if err := dictcsv.WriteFile(outPath, out); err != nil {
				tbl.Print()
				return fmt.Errorf("%w: %w", ErrDictutil, err)
			}
			tbl.AddRow(filepath.Base(path), len(out))
		}
		tbl.Print()
		return nil
	},
}
