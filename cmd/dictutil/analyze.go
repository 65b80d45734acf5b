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
	"os"
	"path/filepath"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/sourashtra-project/dictcsv/dictpress"
)

var analyzeCommand = &cli.Command{
	Name:      "analyze",
	Usage:     "Find duplicate entries in converted import files",
	ArgsUsage: "PATH",
	Description: `Report duplicate main entries and duplicate definition entries in a
converted import file, or in every file of a directory, before import.`,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrDictutil)
		}
		path := c.Args().Get(0)

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDictutil, err)
		}

		files := []string{path}
		if info.IsDir() {
			files, err = inputFiles(path, "")
			if err != nil {
				return err
			}
		}

		duplicates := 0
		tbl := table.New("File", "Mains", "Definitions", "Duplicates")
		for _, path := range files {
			report, err := dictpress.AnalyzeFile(path)
			if err != nil {
				tbl.Print()
				return fmt.Errorf("%w: %w", ErrDictutil, err)
			}

			base := filepath.Base(path)
			for _, d := range report.DuplicateMains {
				fmt.Printf("%s: duplicate main entry %q at lines %v\n", base, d.Content, d.Lines)
			}
			for _, d := range report.DuplicateDefinitions {
				fmt.Printf("%s: duplicate %s definition %q at lines %v\n", base, d.Lang, d.Content, d.Lines)
			}

			n := len(report.DuplicateMains) + len(report.DuplicateDefinitions)
			duplicates += n
			tbl.AddRow(base, report.MainEntries, report.DefinitionEntries, n)
		}
		tbl.Print()

		if duplicates > 0 {
			return fmt.Errorf("%w: %d duplicate entries found", ErrDictutil, duplicates)
		}
		return nil
	},
}
