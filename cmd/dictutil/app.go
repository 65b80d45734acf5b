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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/sourashtra-project/dictcsv"
	"github.com/sourashtra-project/dictcsv/wordlist"
)

const (
	// ExitCodeSuccess is the successful exit code.
	ExitCodeSuccess int = iota

	// ExitCodeFailure is the exit code for validation and processing
	// errors.
	ExitCodeFailure
)

// ErrDictutil is a parent error for all command errors.
var ErrDictutil = errors.New("dictutil")

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `dictutil --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// inputFiles lists the CSV files in dir whose base name matches pattern.
// An empty pattern matches everything.
func inputFiles(dir, pattern string) ([]string, error) {
	files, err := dictcsv.ListFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictutil, err)
	}

	if pattern == "" {
		return files, nil
	}

	var matched []string
	for _, path := range files {
		ok, err := filepath.Match(pattern, filepath.Base(path))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid pattern %q: %w", ErrDictutil, pattern, err)
		}
		if ok {
			matched = append(matched, path)
		}
	}
	return matched, nil
}

// readRows reads all non-empty rows of the CSV file at path.
func readRows(path string) ([][]string, error) {
	s, err := wordlist.NewScannerFromPath(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var rows [][]string
	for s.Scan() {
		rows = append(rows, s.Row())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func newDictutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Process Sourashtra dictionary CSV files.",
		Description: strings.Join([]string{
			"Sourashtra dictionary CSV utility written in Go.",
			"http://github.com/sourashtra-project/dictcsv",
		}, "\n"),
		Flags: []cli.Flag{
			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       "2025 The Sourashtra Dictionary Project Authors",
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			checkCommand,
			formatCommand,
			splitCommand,
			translitCommand,
			cleanCommand,
			convertCommand,
			analyzeCommand,
			exportCommand,
			versionCommand,
		},
	}
}
