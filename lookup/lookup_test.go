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

package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func edgesJSON(labels ...string) string {
	s := `{"edges":[`
	for i, label := range labels {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf(`{"end":{"label":%q}}`, label)
	}
	return s + `]}`
}

func TestRelated(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got, want := r.URL.Query().Get("node"), "/c/en/dog"; got != want {
			t.Errorf("node; want: %q, got: %q", want, got)
		}
		fmt.Fprint(w, edgesJSON(
			"Canine",
			"dog",              // the queried word itself
			"a dog in a house", // too long
			"<b>pet</b>",       // markup is flattened
			"canine",           // duplicate after lowercasing
			"farm animal",
		))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	concepts, err := c.Related(context.Background(), "dog")
	if err != nil {
		t.Fatalf("Related: %v", err)
	}

	want := []string{"canine", "pet", "farm animal"}
	if diff := cmp.Diff(want, concepts); diff != "" {
		t.Errorf("concepts (-want, +got):\n%s", diff)
	}
}

func TestDefine(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got, want := r.URL.Query().Get("rel"), "/r/DefinedAs"; got != want {
			t.Errorf("rel; want: %q, got: %q", want, got)
		}
		fmt.Fprint(w, edgesJSON("dog", "a domesticated canine"))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	definition, err := c.Define(context.Background(), "dog")
	if err != nil {
		t.Fatalf("Define: %v", err)
	}

	if got, want := definition, "a domesticated canine"; got != want {
		t.Errorf("definition; want: %q, got: %q", want, got)
	}
}

func TestDefine_noResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"edges":[]}`)
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	definition, err := c.Define(context.Background(), "dog")
	if err != nil {
		t.Fatalf("Define: %v", err)
	}
	if definition != "" {
		t.Errorf("definition; want: %q, got: %q", "", definition)
	}
}

func TestRelated_serverError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	if _, err := c.Related(context.Background(), "dog"); err == nil {
		t.Errorf("Related: expected error, got nil")
	}
}

func TestRelated_badJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))
	if _, err := c.Related(context.Background(), "dog"); err == nil {
		t.Errorf("Related: expected error, got nil")
	}
}

func TestRelated_contextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"edges":[]}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(WithBaseURL(server.URL))
	if _, err := c.Related(ctx, "dog"); err == nil {
		t.Errorf("Related: expected error, got nil")
	}
}
