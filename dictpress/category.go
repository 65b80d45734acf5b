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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category describes the part of speech and semantic tags assigned to all
// entries of one source file.
type Category struct {
	// Type is the part-of-speech code (see DefinitionTypes).
	Type string `yaml:"type"`

	// Tags are "|"-separated semantic tags.
	Tags string `yaml:"tags"`

	// Category is the broad word class used in entry metadata.
	Category string `yaml:"category"`
}

// defaultCategory is used for source files with no category mapping.
var defaultCategory = Category{Type: "noun", Tags: "general", Category: "noun"}

// defaultCategories maps source file subjects to their categories. The
// subject is the file name without extension, lowercased, with
// underscores normalized to hyphens.
var defaultCategories = map[string]Category{
	"adjectives":              {Type: "adj", Tags: "descriptive|quality", Category: "adjective"},
	"adverbs":                 {Type: "adv", Tags: "manner|degree", Category: "adverb"},
	"age-and-growth-stages":   {Type: "noun", Tags: "time|period|stage|life", Category: "noun"},
	"animals":                 {Type: "noun", Tags: "animal|creature|living", Category: "noun"},
	"birds":                   {Type: "noun", Tags: "bird|animal|flying", Category: "noun"},
	"body-parts":              {Type: "noun", Tags: "anatomy|body|physical", Category: "noun"},
	"ceremonies":              {Type: "noun", Tags: "ritual|ceremony|religious", Category: "noun"},
	"colors":                  {Type: "adj", Tags: "color|visual|appearance", Category: "adjective"},
	"compound-verbs":          {Type: "verb", Tags: "action|compound", Category: "verb"},
	"concepts":                {Type: "noun", Tags: "abstract|concept|idea", Category: "noun"},
	"creatures-and-insects":   {Type: "noun", Tags: "creature|insect|small|animal", Category: "noun"},
	"defective-verbs":         {Type: "verb", Tags: "action|irregular", Category: "verb"},
	"directions":              {Type: "noun", Tags: "direction|spatial|location", Category: "noun"},
	"dress-and-ornaments":     {Type: "noun", Tags: "clothing|ornament|decoration", Category: "noun"},
	"earth-and-related-words": {Type: "noun", Tags: "earth|nature|geography", Category: "noun"},
	"education":               {Type: "noun", Tags: "education|learning|knowledge", Category: "noun"},
	"festivals":               {Type: "noun", Tags: "festival|celebration|cultural", Category: "noun"},
	"food":                    {Type: "noun", Tags: "food|nourishment|eating", Category: "noun"},
	"fruits":                  {Type: "noun", Tags: "fruit|food|plant", Category: "noun"},
	"function-verbs":          {Type: "verb", Tags: "action|function|activity", Category: "verb"},
	"games":                   {Type: "noun", Tags: "game|play|entertainment", Category: "noun"},
	"grammar":                 {Type: "noun", Tags: "grammar|language|linguistic", Category: "noun"},
	"health":                  {Type: "noun", Tags: "health|medical|wellness", Category: "noun"},
	"house-articles":          {Type: "noun", Tags: "household|object|domestic", Category: "noun"},
	"house-parts":             {Type: "noun", Tags: "house|building|structure", Category: "noun"},
	"interrogative-words":     {Type: "pron", Tags: "question|interrogative", Category: "pronoun"},
	"kinship":                 {Type: "noun", Tags: "family|relationship|social", Category: "noun"},
	"kitchen":                 {Type: "noun", Tags: "kitchen|cooking|food", Category: "noun"},
	"law-and-order":           {Type: "noun", Tags: "law|legal|order", Category: "noun"},
	"literature":              {Type: "noun", Tags: "literature|writing|cultural", Category: "noun"},
	"measurements":            {Type: "noun", Tags: "measurement|quantity|size", Category: "noun"},
	"metals":                  {Type: "noun", Tags: "metal|material|substance", Category: "noun"},
	"months":                  {Type: "noun", Tags: "time|month|calendar", Category: "noun"},
	"music":                   {Type: "noun", Tags: "music|art|cultural", Category: "noun"},
	"numerals":                {Type: "noun", Tags: "number|quantity|counting", Category: "noun"},
	"physique":                {Type: "noun", Tags: "physical|body|appearance", Category: "noun"},
	"plants":                  {Type: "noun", Tags: "plant|nature|botanical", Category: "noun"},
	"politics":                {Type: "noun", Tags: "politics|government|social", Category: "noun"},
	"profession":              {Type: "noun", Tags: "profession|work|occupation", Category: "noun"},
	"pronouns":                {Type: "pron", Tags: "pronoun|reference", Category: "pronoun"},
	"provisions":              {Type: "noun", Tags: "provision|supply|material", Category: "noun"},
	"religious-institutions":  {Type: "noun", Tags: "religious|institution|spiritual", Category: "noun"},
	"seasons":                 {Type: "noun", Tags: "season|time|weather", Category: "noun"},
	"simple-verbs":            {Type: "verb", Tags: "action|simple", Category: "verb"},
	"sizes-and-shapes":        {Type: "adj", Tags: "size|shape|physical", Category: "adjective"},
	"sky":                     {Type: "noun", Tags: "sky|celestial|nature", Category: "noun"},
	"time":                    {Type: "noun", Tags: "time|temporal|duration", Category: "noun"},
	"trade":                   {Type: "noun", Tags: "trade|commerce|business", Category: "noun"},
	"transport":               {Type: "noun", Tags: "transport|vehicle|movement", Category: "noun"},
	"tree":                    {Type: "noun", Tags: "tree|plant|nature", Category: "noun"},
	"vegetables":              {Type: "noun", Tags: "vegetable|food|plant", Category: "noun"},
	"water-animals":           {Type: "noun", Tags: "animal|water|aquatic", Category: "noun"},
}

// Categories maps source file subjects to entry categories.
type Categories map[string]Category

// DefaultCategories returns a copy of the built-in category mappings.
func DefaultCategories() Categories {
	m := make(Categories, len(defaultCategories))
	for k, v := range defaultCategories {
		m[k] = v
	}
	return m
}

// LoadCategories loads category mappings from a YAML file and merges them
// over the built-in defaults.
func LoadCategories(path string) (Categories, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}

	var overrides map[string]Category
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("error parsing %q: %w", path, err)
	}

	m := DefaultCategories()
	for k, v := range overrides {
		m[normalizeSubject(k)] = v
	}
	return m, nil
}

// For returns the category for the source file with the given name.
func (c Categories) For(filename string) Category {
	subject := filename
	for ext := strings.ToLower(filepath.Ext(subject)); ext == ".csv" || ext == ".gz"; ext = strings.ToLower(filepath.Ext(subject)) {
		subject = strings.TrimSuffix(subject, subject[len(subject)-len(ext):])
	}
	if cat, ok := c[normalizeSubject(subject)]; ok {
		return cat
	}
	return defaultCategory
}

func normalizeSubject(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}
