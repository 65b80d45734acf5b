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

package dictpress

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sourashtra-project/dictcsv"
)

// Duplicate reports entries sharing the same content.
type Duplicate struct {
	// Content is the duplicated entry text.
	Content string

	// Lang is the entry language.
	Lang string

	// Lines are the 1-based line numbers of the duplicates in the file.
	Lines []int
}

// Report is the result of analyzing a converted import file for unique
// constraint violations.
type Report struct {
	// Path is the analyzed file.
	Path string

	// MainEntries is the number of main entry rows.
	MainEntries int

	// DefinitionEntries is the number of definition entry rows.
	DefinitionEntries int

	// DuplicateMains lists main entries sharing a term.
	DuplicateMains []Duplicate

	// DuplicateDefinitions lists definition entries sharing a
	// (content, language) pair.
	DuplicateDefinitions []Duplicate
}

// Clean reports whether the file has no duplicates and can be imported.
func (r *Report) Clean() bool {
	return len(r.DuplicateMains) == 0 && len(r.DuplicateDefinitions) == 0
}

// AnalyzeFile checks the converted import file at path for duplicate main
// entries and duplicate definition entries.
func AnalyzeFile(path string) (*Report, error) {
	r, err := dictcsv.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	type key struct {
		content string
		lang    string
	}

	report := &Report{Path: path}
	mains := map[string][]int{}
	defs := map[key][]int{}

	cr := dictcsv.NewReader(r)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", path, err)
		}
		line, _ := cr.FieldPos(0)
		if len(row) < 4 {
			continue
		}

		content := strings.TrimSpace(row[2])
		lang := strings.TrimSpace(row[3])

		switch strings.TrimSpace(row[0]) {
		case TypeMain:
			report.MainEntries++
			mains[content] = append(mains[content], line)
		case TypeDefinition:
			report.DefinitionEntries++
			k := key{content: content, lang: lang}
			defs[k] = append(defs[k], line)
		}
	}

	for content, lines := range mains {
		if len(lines) > 1 {
			report.DuplicateMains = append(report.DuplicateMains, Duplicate{
				Content: content,
				Lang:    LangSourashtra,
				Lines:   lines,
			})
		}
	}
	for k, lines := range defs {
		if len(lines) > 1 {
			report.DuplicateDefinitions = append(report.DuplicateDefinitions, Duplicate{
				Content: k.content,
				Lang:    k.lang,
				Lines:   lines,
			})
		}
	}

	sortDuplicates(report.DuplicateMains)
	sortDuplicates(report.DuplicateDefinitions)

	return report, nil
}

func sortDuplicates(dups []Duplicate) {
	sort.Slice(dups, func(i, j int) bool {
		if dups[i].Content != dups[j].Content {
			return dups[i].Content < dups[j].Content
		}
		return dups[i].Lang < dups[j].Lang
	})
}
