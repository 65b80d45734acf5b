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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/sourashtra-project/dictcsv/dictpress"
	"github.com/sourashtra-project/dictcsv/lookup"
)

var convertCommand = &cli.Command{
	Name:  "convert",
	Usage: "Convert word lists to the dictpress import format",
	Description: `Convert transliterated 9-column word lists into 11-column dictpress
import files. Duplicate words within a file are merged, words already
converted in other files are dropped, and duplicate definitions are
deduplicated. Conversion continues past failing files.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "input-dir",
			Usage: "read word list files from `DIR`",
			Value: ".",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Usage: "write import files to `DIR`",
			Value: "import",
		},
		&cli.StringFlag{
			Name:  "existing-dir",
			Usage: "check `DIR` for already converted terms (default: output dir)",
		},
		&cli.StringFlag{
			Name:  "file-pattern",
			Usage: "only convert files matching `GLOB`",
			Value: "*.csv",
		},
		&cli.StringFlag{
			Name:  "categories",
			Usage: "load category mappings from YAML `FILE`",
		},
		&cli.BoolFlag{
			Name:  "enrich",
			Usage: "enrich entries with related concepts from ConceptNet",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "report results without writing",
		},
	},
	Action: func(c *cli.Context) error {
		var opts []dictpress.Option
		if path := c.String("categories"); path != "" {
			categories, err := dictpress.LoadCategories(path)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDictutil, err)
			}
			opts = append(opts, dictpress.WithCategories(categories))
		}
		if c.Bool("enrich") {
			opts = append(opts, dictpress.WithEnricher(lookup.NewClient()))
		}
		converter := dictpress.NewConverter(opts...)

		files, err := inputFiles(c.String("input-dir"), c.String("file-pattern"))
		if err != nil {
			return err
		}

		outputDir := c.String("output-dir")
		existingDir := c.String("existing-dir")
		if existingDir == "" {
			existingDir = outputDir
		}

		failed := 0
		tbl := table.New("File", "In", "Out", "Merged", "Skipped", "Deduped")
		for _, path := range files {
			base := strings.TrimSuffix(filepath.Base(path), ".gz")
			outPath := filepath.Join(outputDir, base)

			result, err := converter.ConvertFile(c.Context, path, outPath, existingDir, c.Bool("dry-run"))
			if err != nil {
				log.Printf("error converting %s: %v", filepath.Base(path), err)
				failed++
				continue
			}

			tbl.AddRow(base, result.InputRows, result.OutputRows,
				result.Merged, result.SkippedExisting, result.DedupedDefinitions)
		}
		tbl.Print()

		if failed > 0 {
			return fmt.Errorf("%w: %d files failed", ErrDictutil, failed)
		}
		return nil
	},
}
