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

package folding

import (
	"testing"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    string

		expected string
	}{
		{
			name:     "leading whitespace",
			s:        " \t　foo",
			expected: "foo",
		},
		{
			name:     "trailing whitespace",
			s:        "foo \t　",
			expected: "foo",
		},
		{
			name:     "whitespace spans",
			s:        "foo \t　 bar \t　 baz",
			expected: "foo bar baz",
		},
		{
			name:     "all whitespace",
			s:        " \t　 ",
			expected: "",
		},
		{
			name:     "empty",
			s:        "",
			expected: "",
		},
		{
			name:     "no whitespace",
			s:        "foo",
			expected: "foo",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got, want := Fold(test.s), test.expected; got != want {
				t.Errorf("Fold; want: %q, got: %q", want, got)
			}
		})
	}
}
