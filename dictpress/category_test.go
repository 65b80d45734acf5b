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

func TestCategoriesFor(t *testing.T) {
	t.Parallel()

	categories := DefaultCategories()

	tests := []struct {
		name     string
		filename string

		expected Category
	}{
		{
			name:     "known subject",
			filename: "Animals.csv",
			expected: Category{Type: "noun", Tags: "animal|creature|living", Category: "noun"},
		},
		{
			name:     "gzip extension stripped",
			filename: "Animals.csv.gz",
			expected: Category{Type: "noun", Tags: "animal|creature|living", Category: "noun"},
		},
		{
			name:     "underscores normalized",
			filename: "Body_Parts.csv",
			expected: Category{Type: "noun", Tags: "anatomy|body|physical", Category: "noun"},
		},
		{
			name:     "verb subject",
			filename: "Simple_Verbs.csv",
			expected: Category{Type: "verb", Tags: "action|simple", Category: "verb"},
		},
		{
			name:     "unknown subject falls back to default",
			filename: "Mystery.csv",
			expected: defaultCategory,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := categories.For(test.filename)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("For (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLoadCategories(t *testing.T) {
	t.Parallel()

	path := testutil.WriteRaw(t, t.TempDir(), "categories.yaml", `
animals:
  type: noun
  tags: beast|wild
  category: noun
Star_Signs:
  type: noun
  tags: astrology
  category: noun
`)

	categories, err := LoadCategories(path)
	if err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}

	// Overrides replace built-in mappings.
	want := Category{Type: "noun", Tags: "beast|wild", Category: "noun"}
	if diff := cmp.Diff(want, categories.For("Animals.csv")); diff != "" {
		t.Errorf("For (-want, +got):\n%s", diff)
	}

	// New subjects are merged in with their keys normalized.
	want = Category{Type: "noun", Tags: "astrology", Category: "noun"}
	if diff := cmp.Diff(want, categories.For("star_signs.csv")); diff != "" {
		t.Errorf("For (-want, +got):\n%s", diff)
	}

	// Built-in mappings without overrides are kept.
	want = Category{Type: "adj", Tags: "descriptive|quality", Category: "adjective"}
	if diff := cmp.Diff(want, categories.For("Adjectives.csv")); diff != "" {
		t.Errorf("For (-want, +got):\n%s", diff)
	}
}

func TestLoadCategories_missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadCategories("does-not-exist.yaml"); err == nil {
		t.Errorf("LoadCategories: expected error, got nil")
	}
}
