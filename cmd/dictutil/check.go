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
)

var checkCommand = &cli.Command{
	Name:      "check",
	Usage:     "Validate CSV field counts",
	ArgsUsage: "DIR",
	Description: `Check that every non-empty row of every CSV file in a directory has
the expected number of fields. Checking stops at the first bad row.`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "fields",
			Usage: "expected number of fields per row",
			Value: dictcsv.TranslitFields,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrDictutil)
		}

		files, err := inputFiles(c.Args().Get(0), "")
		if err != nil {
			return err
		}

		fields := c.Int("fields")
		tbl := table.New("File", "Rows", "Status")
		for _, path := range files {
			rows, err := dictcsv.CheckFile(path, fields)
			if err != nil {
				tbl.AddRow(filepath.Base(path), rows, "invalid")
				tbl.Print()
				return fmt.Errorf("%w: %w", ErrDictutil, err)
			}
			tbl.AddRow(filepath.Base(path), rows, "ok")
		}
		tbl.Print()
		fmt.Printf("%d files valid\n", len(files))
		return nil
	},
}
