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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sourashtra-project/dictcsv"
	"github.com/sourashtra-project/dictcsv/internal/index"
)

// ErrNoHeader indicates an input file with no header row.
var ErrNoHeader = errors.New("empty file or no header")

// Enricher provides lexical enrichment for English meanings. Enrichment
// is best effort: callers degrade to empty data on error.
type Enricher interface {
	// Related returns concepts related to word.
	Related(ctx context.Context, word string) ([]string, error)

	// Define returns a short definition of word.
	Define(ctx context.Context, word string) (string, error)
}

// Converter converts transliterated word list files into dictpress import
// files.
type Converter struct {
	categories Categories
	enricher   Enricher
}

// Option configures a Converter.
type Option func(*Converter)

// WithCategories sets the category mappings used for source files.
func WithCategories(c Categories) Option {
	return func(conv *Converter) {
		conv.categories = c
	}
}

// WithEnricher enables lexical enrichment of converted entries. Without
// an enricher the converter performs no network calls.
func WithEnricher(e Enricher) Option {
	return func(conv *Converter) {
		conv.enricher = e
	}
}

// NewConverter returns a new Converter.
func NewConverter(opts ...Option) *Converter {
	conv := &Converter{
		categories: DefaultCategories(),
	}
	for _, opt := range opts {
		opt(conv)
	}
	return conv
}

// Result summarizes conversion of a single file.
type Result struct {
	// InputRows is the number of data rows read, excluding the header.
	InputRows int

	// OutputRows is the number of import rows written.
	OutputRows int

	// Merged is the number of duplicate input rows merged into existing
	// main entries.
	Merged int

	// SkippedExisting is the number of main entries dropped because the
	// term already exists in another converted file.
	SkippedExisting int

	// DedupedDefinitions is the number of duplicate definition entries
	// dropped.
	DedupedDefinitions int
}

// entryMeta is the JSON metadata attached to main entries.
type entryMeta struct {
	Script   string `json:"script"`
	Category string `json:"category"`
	Type     string `json:"type"`
}

// detectDefinitionType returns the part-of-speech code for an English
// meaning. The source file's category takes precedence; keyword patterns
// in the meaning are the fallback.
func detectDefinitionType(englishMeaning string, cat Category) string {
	if cat.Type != "" {
		return cat.Type
	}

	meaning := strings.ToLower(englishMeaning)
	switch {
	case containsAny(meaning, "action", "to ", "doing"):
		return "verb"
	case containsAny(meaning, "quality", "describing", "characteristic"):
		return "adj"
	case containsAny(meaning, "manner", "way", "how"):
		return "adv"
	default:
		return "noun"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// semanticTags builds the "|"-separated tag list for an entry from its
// category tags, meaning keywords and related concepts.
func semanticTags(cat Category, englishMeaning string, concepts []string) string {
	tags := map[string]bool{}
	for _, t := range strings.Split(cat.Tags, "|") {
		if t != "" {
			tags[t] = true
		}
	}

	meaning := strings.ToLower(englishMeaning)
	if containsAny(meaning, "time", "period") {
		tags["temporal"] = true
	}
	if containsAny(meaning, "person", "people") {
		tags["person"] = true
	}
	if containsAny(meaning, "place", "location") {
		tags["location"] = true
	}

	if len(concepts) > 2 {
		concepts = concepts[:2]
	}
	for _, c := range concepts {
		if c != "" {
			tags[c] = true
		}
	}

	sorted := make([]string, 0, len(tags))
	for t := range tags {
		sorted = append(sorted, t)
	}
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}

// metaJSON builds the metadata JSON for a main entry. Meanings naming a
// tangible object classify the word as concrete.
func metaJSON(cat Category, englishMeaning string) string {
	kind := "abstract"
	if containsAny(strings.ToLower(englishMeaning), "object", "thing", "person", "place") {
		kind = "concrete"
	}

	data, err := json.Marshal(entryMeta{
		Script:   "sourashtra",
		Category: cat.Category,
		Type:     kind,
	})
	if err != nil {
		// entryMeta always marshals.
		return ""
	}
	return string(data)
}

// enrich looks up related concepts and a definition for the first word of
// the English meaning. Failures degrade to empty data.
func (c *Converter) enrich(ctx context.Context, englishMeaning string) ([]string, string) {
	if c.enricher == nil {
		return nil, ""
	}

	fields := strings.Fields(englishMeaning)
	if len(fields) == 0 {
		return nil, ""
	}
	head := fields[0]

	concepts, err := c.enricher.Related(ctx, head)
	if err != nil {
		log.Printf("warning: enrichment lookup for %q failed: %v", head, err)
		concepts = nil
	}

	definition, err := c.enricher.Define(ctx, head)
	if err != nil {
		log.Printf("warning: definition lookup for %q failed: %v", head, err)
		definition = ""
	}

	return concepts, definition
}

// entriesFor builds the import entries for one Sourashtra word. base is
// the first input row carrying the word and its pronunciations;
// englishMeanings and tamilMeanings are the unique meanings collected
// across duplicate rows, sorted.
func (c *Converter) entriesFor(ctx context.Context, base []string, englishMeanings, tamilMeanings []string, filename string) []Entry {
	word := strings.TrimSpace(base[0])
	hindiPron := strings.TrimSpace(base[1])
	tamilPron := strings.TrimSpace(base[2])
	roman := strings.TrimSpace(base[3])
	hk := strings.TrimSpace(base[4])
	iast := strings.TrimSpace(base[5])
	ipa := strings.TrimSpace(base[6])

	allEnglish := strings.Join(englishMeanings, "; ")
	allTamil := strings.Join(tamilMeanings, "; ")

	cat := c.categories.For(filename)
	concepts, definition := c.enrich(ctx, allEnglish)

	definitionType := detectDefinitionType(allEnglish, cat)
	tags := semanticTags(cat, allEnglish, concepts)
	tokens := Tokens(word, []string{roman, hk, iast}, allEnglish, allTamil, concepts)
	phones := combinePhones(hindiPron, tamilPron, roman, hk, iast, ipa)

	entries := []Entry{{
		Type:           TypeMain,
		Initial:        initialOf(word),
		Content:        word,
		Lang:           LangSourashtra,
		TSVectorTokens: tokens,
		Tags:           tags,
		Phones:         phones,
		Meta:           metaJSON(cat, allEnglish),
	}}

	for _, english := range englishMeanings {
		entries = append(entries, Entry{
			Type:           TypeDefinition,
			Content:        english,
			Lang:           LangEnglish,
			Notes:          definition,
			TSVectorLang:   LangEnglish,
			Tags:           tags,
			DefinitionType: definitionType,
		})
	}

	for _, tamil := range tamilMeanings {
		entries = append(entries, Entry{
			Type:           TypeDefinition,
			Content:        tamil,
			Lang:           LangTamil,
			TSVectorLang:   LangTamil,
			TSVectorTokens: Tokens("", []string{tamil}, "", tamil, nil),
			Tags:           tags,
			Phones:         tamilPron,
			DefinitionType: definitionType,
		})
	}

	return entries
}

// wordGroup collects the input rows sharing one Sourashtra word.
type wordGroup struct {
	word string
	rows [][]string
}

// mergeAndConvert converts input rows into import entries, merging rows
// that share a Sourashtra word into a single main entry with one
// definition entry per unique meaning. The second return value is the
// number of duplicate rows merged away.
func (c *Converter) mergeAndConvert(ctx context.Context, rows [][]string, filename string) ([]Entry, int) {
	var groups []*wordGroup
	byWord := map[string]*wordGroup{}

	for _, row := range rows {
		if len(row) < dictcsv.TranslitFields {
			log.Printf("warning: row has %d fields, expected %d: %v", len(row), dictcsv.TranslitFields, row)
			continue
		}
		word := strings.TrimSpace(row[0])
		if word == "" {
			continue
		}
		g, ok := byWord[word]
		if !ok {
			g = &wordGroup{word: word}
			byWord[word] = g
			groups = append(groups, g)
		}
		g.rows = append(g.rows, row)
	}

	var entries []Entry
	merged := 0

	for _, g := range groups {
		merged += len(g.rows) - 1

		englishSet := map[string]bool{}
		tamilSet := map[string]bool{}
		for _, row := range g.rows {
			if m := strings.TrimSpace(row[7]); m != "" {
				englishSet[m] = true
			}
			if m := strings.TrimSpace(row[8]); m != "" {
				tamilSet[m] = true
			}
		}

		if len(englishSet) == 0 {
			// No usable meaning; entry cannot be imported.
			continue
		}

		entries = append(entries, c.entriesFor(ctx, g.rows[0], sortedKeys(englishSet), sortedKeys(tamilSet), filename)...)
	}

	return entries, merged
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TermRef locates a main entry term in a converted file.
type TermRef struct {
	// Term is the Sourashtra word.
	Term string

	// File is the base name of the file holding the entry.
	File string

	// Line is the 1-based line number of the entry in the file.
	Line int
}

// String implements fmt.Stringer for indexing.
func (t *TermRef) String() string {
	return t.Term
}

// LoadExistingTerms indexes the main entry terms of all converted CSV
// files in dir, skipping the file named skipName. A missing directory
// yields an empty index.
func LoadExistingTerms(dir, skipName string) (*index.Index[*TermRef], error) {
	var refs []*TermRef

	files, err := dictcsv.ListFiles(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return index.New(refs, strings.Compare), nil
		}
		return nil, err
	}

	for _, path := range files {
		if filepath.Base(path) == skipName {
			continue
		}

		r, err := dictcsv.Open(path)
		if err != nil {
			log.Printf("warning: could not read %s: %v", path, err)
			continue
		}

		cr := dictcsv.NewReader(r)
		for {
			row, err := cr.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				log.Printf("warning: could not read %s: %v", path, err)
				break
			}
			line, _ := cr.FieldPos(0)
			if len(row) < 4 || strings.TrimSpace(row[0]) != TypeMain {
				continue
			}
			term := strings.TrimSpace(row[2])
			if term != "" {
				refs = append(refs, &TermRef{Term: term, File: filepath.Base(path), Line: line})
			}
		}
		r.Close()
	}

	return index.New(refs, strings.Compare), nil
}

// dropExisting removes main entries whose term already exists in another
// converted file, together with their immediately following definition
// entries.
func dropExisting(entries []Entry, existing *index.Index[*TermRef]) ([]Entry, int) {
	var kept []Entry
	skipped := 0

	for i := 0; i < len(entries); {
		e := entries[i]
		if e.Type != TypeMain {
			kept = append(kept, e)
			i++
			continue
		}

		if len(existing.Search(e.Content)) > 0 {
			skipped++
			i++
			for i < len(entries) && entries[i].Type == TypeDefinition {
				i++
			}
			continue
		}

		kept = append(kept, e)
		i++
	}

	return kept, skipped
}

// dedupeDefinitions drops duplicate definition entries, keyed by
// (content, language). Main entries are always kept.
func dedupeDefinitions(entries []Entry) ([]Entry, int) {
	type defKey struct {
		content string
		lang    string
	}

	seen := map[defKey]bool{}
	var kept []Entry
	dropped := 0

	for _, e := range entries {
		if e.Type != TypeDefinition {
			kept = append(kept, e)
			continue
		}

		key := defKey{content: strings.TrimSpace(e.Content), lang: strings.TrimSpace(e.Lang)}
		if seen[key] {
			dropped++
			continue
		}
		seen[key] = true
		kept = append(kept, e)
	}

	return kept, dropped
}

// ConvertFile converts the word list file at inputPath into a dictpress
// import file at outputPath. existingDir is scanned for already converted
// terms so that cross-file duplicate main entries are dropped. The first
// row of the input is a header and is skipped. When dryRun is true
// nothing is written.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath, existingDir string, dryRun bool) (*Result, error) {
	r, err := dictcsv.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	cr := dictcsv.NewReader(r)

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrNoHeader, inputPath)
		}
		return nil, fmt.Errorf("error reading %q: %w", inputPath, err)
	}

	result := &Result{}
	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", inputPath, err)
		}
		result.InputRows++
		if dictcsv.IsEmptyRow(row) {
			continue
		}
		rows = append(rows, row)
	}

	entries, merged := c.mergeAndConvert(ctx, rows, filepath.Base(inputPath))
	result.Merged = merged

	existing, err := LoadExistingTerms(existingDir, filepath.Base(inputPath))
	if err != nil {
		return nil, err
	}

	entries, skipped := dropExisting(entries, existing)
	result.SkippedExisting = skipped

	entries, deduped := dedupeDefinitions(entries)
	result.DedupedDefinitions = deduped

	result.OutputRows = len(entries)

	if !dryRun && len(entries) > 0 {
		outRows := make([][]string, 0, len(entries))
		for i := range entries {
			outRows = append(outRows, entries[i].Row())
		}
		if err := dictcsv.WriteFile(outputPath, outRows); err != nil {
			return nil, err
		}
	}

	return result, nil
}
