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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sourashtra-project/dictcsv/internal/testutil"
)

func TestAnalyzeFile(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		(&Entry{Type: TypeMain, Initial: "ꢥ", Content: "ꢥꢬ", Lang: LangSourashtra}).Row(),
		(&Entry{Type: TypeDefinition, Content: "man", Lang: LangEnglish}).Row(),
		(&Entry{Type: TypeDefinition, Content: "manidan", Lang: LangTamil}).Row(),
		(&Entry{Type: TypeMain, Initial: "ꢥ", Content: "ꢥꢬ", Lang: LangSourashtra}).Row(),
		(&Entry{Type: TypeDefinition, Content: "man", Lang: LangEnglish}).Row(),
		(&Entry{Type: TypeMain, Initial: "ꢪ", Content: "ꢪꢥ", Lang: LangSourashtra}).Row(),
		// Same content in a different language is not a duplicate.
		(&Entry{Type: TypeDefinition, Content: "man", Lang: LangTamil}).Row(),
	}
	path := testutil.WriteCSV(t, t.TempDir(), "Animals.csv", rows)

	report, err := AnalyzeFile(path)
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}

	if got, want := report.MainEntries, 3; got != want {
		t.Errorf("main entries; want: %d, got: %d", want, got)
	}
	if got, want := report.DefinitionEntries, 4; got != want {
		t.Errorf("definition entries; want: %d, got: %d", want, got)
	}
	if report.Clean() {
		t.Errorf("Clean; want: false, got: true")
	}

	wantMains := []Duplicate{
		{Content: "ꢥꢬ", Lang: LangSourashtra, Lines: []int{1, 4}},
	}
	if diff := cmp.Diff(wantMains, report.DuplicateMains); diff != "" {
		t.Errorf("duplicate mains (-want, +got):\n%s", diff)
	}

	wantDefs := []Duplicate{
		{Content: "man", Lang: LangEnglish, Lines: []int{2, 5}},
	}
	if diff := cmp.Diff(wantDefs, report.DuplicateDefinitions); diff != "" {
		t.Errorf("duplicate definitions (-want, +got):\n%s", diff)
	}
}

func TestAnalyzeFile_blankLines(t *testing.T) {
	t.Parallel()

	// Blank lines produce no CSV record but still count toward the
	// reported line numbers.
	path := testutil.WriteRaw(t, t.TempDir(), "Animals.csv",
		"-,ꢥ,ꢥꢬ,sourashtra\n\n-,ꢥ,ꢥꢬ,sourashtra\n")

	report, err := AnalyzeFile(path)
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}

	want := []Duplicate{
		{Content: "ꢥꢬ", Lang: LangSourashtra, Lines: []int{1, 3}},
	}
	if diff := cmp.Diff(want, report.DuplicateMains); diff != "" {
		t.Errorf("duplicate mains (-want, +got):\n%s", diff)
	}
}

func TestAnalyzeFile_paddedType(t *testing.T) {
	t.Parallel()

	// Surrounding whitespace on the type field does not hide an entry.
	path := testutil.WriteRaw(t, t.TempDir(), "Animals.csv",
		" -,ꢥ,ꢥꢬ,sourashtra\n ^,,man,english\n")

	report, err := AnalyzeFile(path)
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}

	if got, want := report.MainEntries, 1; got != want {
		t.Errorf("main entries; want: %d, got: %d", want, got)
	}
	if got, want := report.DefinitionEntries, 1; got != want {
		t.Errorf("definition entries; want: %d, got: %d", want, got)
	}
}

func TestAnalyzeFile_clean(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		(&Entry{Type: TypeMain, Initial: "ꢥ", Content: "ꢥꢬ", Lang: LangSourashtra}).Row(),
		(&Entry{Type: TypeDefinition, Content: "man", Lang: LangEnglish}).Row(),
	}
	path := testutil.WriteCSV(t, t.TempDir(), "Animals.csv", rows)

	report, err := AnalyzeFile(path)
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}
	if !report.Clean() {
		t.Errorf("Clean; want: true, got: false")
	}
}
