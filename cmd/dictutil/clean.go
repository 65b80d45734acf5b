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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/sourashtra-project/dictcsv"
)

// maxDiffLines is the number of per-line diffs shown per file unless
// --diff-only is given.
const maxDiffLines = 5

var cleanCommand = &cli.Command{
	Name:      "clean",
	Usage:     "Remove bracket clarification terms",
	ArgsUsage: "DIR [OUT]",
	Description: `Remove "(...)" clarification terms like "(adj)" from every field and
fold the remaining whitespace. Files are rewritten in place when OUT is
omitted; compressed files are skipped.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "report changes without writing",
		},
		&cli.BoolFlag{
			Name:  "no-diff",
			Usage: "suppress per-line diffs",
		},
		&cli.BoolFlag{
			Name:  "diff-only",
			Usage: "print all diffs and write nothing",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 || c.NArg() > 2 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrDictutil)
		}

		outDir := c.Args().Get(1)
		dryRun := c.Bool("dry-run") || c.Bool("diff-only")
		noDiff := c.Bool("no-diff") && !c.Bool("diff-only")

		files, err := inputFiles(c.Args().Get(0), "")
		if err != nil {
			return err
		}

		tbl := table.New("File", "Lines", "Changed", "Removed")
		for _, path := range files {
			base := filepath.Base(path)
			if strings.HasSuffix(base, ".gz") {
				fmt.Printf("skipping %s: compressed\n", base)
				continue
			}

			outPath := path
			if outDir != "" {
				outPath = filepath.Join(outDir, base)
			}

			result, err := dictcsv.CleanFile(path, outPath, dryRun)
			if err != nil {
				tbl.Print()
				return fmt.Errorf("%w: %w", ErrDictutil, err)
			}

			if !noDiff {
				for i, change := range result.Changes {
					if !c.Bool("diff-only") && i >= maxDiffLines {
						fmt.Printf("... %d more changes\n", len(result.Changes)-i)
						break
					}
					fmt.Printf("%s:%d\n- %s\n+ %s\n", base, change.Line, change.Before, change.After)
				}
			}

			tbl.AddRow(base, result.Lines, len(result.Changes), result.TermsRemoved)
		}
		tbl.Print()
		return nil
	},
}
