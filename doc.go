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

// Package dictcsv implements tooling for the CSV files that make up the
// Sourashtra dictionary dataset.
//
// The dataset moves through a pipeline of CSV conventions, each stage a
// directory of files produced by the previous one:
//  1. Raw spreadsheet exports with 5 columns in reverse order
//     (Tamil meaning, English meaning, Tamil pronunciation, Hindi
//     pronunciation, Sourashtra word).
//  2. Reformatted 5-column word lists (Sourashtra word, Hindi
//     pronunciation, Tamil pronunciation, English meaning, Tamil meaning),
//     optionally with composite terms split into one row per term.
//  3. Transliterated 9-column lists with RomanReadable, Harvard-Kyoto,
//     IAST and IPA renderings of the Sourashtra word inserted after the
//     pronunciations.
//  4. 11-column dictpress import files with one main entry row and one
//     definition row per language for each word.
//
// This package holds the plumbing shared by all stages: directory listing,
// gzip-aware file access, row writing, field-count validation and bracket
// term cleanup. Stage-specific transformations live in the wordlist,
// translit and dictpress packages.
package dictcsv
