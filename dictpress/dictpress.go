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

// Package dictpress converts transliterated 9-column word lists into the
// 11-column dictpress import format and analyzes converted files for
// import constraint violations.
//
// Each word list row fans out into three import rows: a main entry for
// the Sourashtra word and one definition entry each for its English and
// Tamil meanings. Main entries must be unique per word and definition
// entries unique per (content, language) pair, matching the unique
// constraints of the downstream import database.
package dictpress

import (
	"strings"
)

// Entry row types.
const (
	// TypeMain marks a main dictionary entry row.
	TypeMain = "-"

	// TypeDefinition marks a definition entry row.
	TypeDefinition = "^"
)

// Entry languages.
const (
	LangSourashtra = "sourashtra"
	LangEnglish    = "english"
	LangTamil      = "tamil"
)

// Fields is the field count of dictpress import rows.
const Fields = 11

// Entry is a single dictpress import row.
type Entry struct {
	// Type is TypeMain or TypeDefinition.
	Type string

	// Initial is the first character of the content, set on main entries.
	Initial string

	// Content is the entry text.
	Content string

	// Lang is the content language.
	Lang string

	// Notes is optional free-form annotation text.
	Notes string

	// TSVectorLang is the text-search configuration language. It is empty
	// for Sourashtra content, which has no stemmer and carries explicit
	// tokens instead.
	TSVectorLang string

	// TSVectorTokens are explicit search tokens in text-search engine
	// token/weight format.
	TSVectorTokens string

	// Tags are "|"-separated semantic tags.
	Tags string

	// Phones are "|"-separated pronunciations.
	Phones string

	// DefinitionType is the part-of-speech code on definition entries.
	DefinitionType string

	// Meta is a JSON metadata object.
	Meta string
}

// Row returns the entry as an 11-field CSV row.
func (e *Entry) Row() []string {
	return []string{
		e.Type,
		e.Initial,
		e.Content,
		e.Lang,
		e.Notes,
		e.TSVectorLang,
		e.TSVectorTokens,
		e.Tags,
		e.Phones,
		e.DefinitionType,
		e.Meta,
	}
}

// DefinitionTypes maps part-of-speech codes to their display names in the
// import database.
var DefinitionTypes = map[string]string{
	"abbr":   "Abbreviation",
	"adj":    "Adjective",
	"adv":    "Adverb",
	"auxv":   "Auxiliary verb",
	"conj":   "Conjugation",
	"idm":    "Idiom",
	"interj": "Interjection",
	"noun":   "Noun",
	"pfx":    "Prefix",
	"ph":     "Phrase",
	"phrv":   "Phrasal verb",
	"prep":   "Preposition",
	"pron":   "Pronoun",
	"propn":  "Proper Noun",
	"sfx":    "Suffix",
	"verb":   "Verb",
}

// initialOf returns the first character of the word for the initial
// field.
func initialOf(word string) string {
	for _, r := range word {
		return string(r)
	}
	return ""
}

// combinePhones joins all non-blank pronunciations with "|".
func combinePhones(phones ...string) string {
	var parts []string
	for _, p := range phones {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "|")
}
