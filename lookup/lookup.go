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

// Package lookup queries the ConceptNet API for concepts related to
// English words. It backs the optional enrichment stage of the dictpress
// converter.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/k3a/html2text"
)

// DefaultBaseURL is the public ConceptNet API endpoint.
const DefaultBaseURL = "https://api.conceptnet.io"

// defaultLimit is the number of edges requested per query.
const defaultLimit = 10

// Client queries the ConceptNet API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limit      int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient returns a new ConceptNet client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		limit: defaultLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// response is the subset of the ConceptNet query response we decode.
type response struct {
	Edges []struct {
		End struct {
			Label string `json:"label"`
		} `json:"end"`
	} `json:"edges"`
}

func (c *Client) query(ctx context.Context, params url.Values) (*response, error) {
	u := c.baseURL + "/query?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error querying %q: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %q querying %q", resp.Status, u)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("error decoding response from %q: %w", u, err)
	}
	return &r, nil
}

// node returns the ConceptNet node URI for an English word.
func node(word string) string {
	return "/c/en/" + strings.ToLower(strings.TrimSpace(word))
}

// clean flattens label markup to plain lowercase text.
func clean(label string) string {
	return strings.ToLower(strings.TrimSpace(html2text.HTML2Text(label)))
}

// Related returns short concepts related to word, lowercased and
// deduplicated. Labels of more than two words are skipped.
func (c *Client) Related(ctx context.Context, word string) ([]string, error) {
	params := url.Values{}
	params.Set("node", node(word))
	params.Set("limit", fmt.Sprintf("%d", c.limit))

	r, err := c.query(ctx, params)
	if err != nil {
		return nil, err
	}

	word = strings.ToLower(strings.TrimSpace(word))
	seen := map[string]bool{}
	var concepts []string
	for _, edge := range r.Edges {
		label := clean(edge.End.Label)
		if label == "" || label == word || seen[label] {
			continue
		}
		if len(strings.Fields(label)) > 2 {
			continue
		}
		seen[label] = true
		concepts = append(concepts, label)
	}
	return concepts, nil
}

// Define returns a short definition of word from DefinedAs relations, or
// the empty string if none exists.
func (c *Client) Define(ctx context.Context, word string) (string, error) {
	params := url.Values{}
	params.Set("node", node(word))
	params.Set("rel", "/r/DefinedAs")
	params.Set("limit", fmt.Sprintf("%d", c.limit))

	r, err := c.query(ctx, params)
	if err != nil {
		return "", err
	}

	word = strings.ToLower(strings.TrimSpace(word))
	for _, edge := range r.Edges {
		label := clean(edge.End.Label)
		if label != "" && label != word {
			return label, nil
		}
	}
	return "", nil
}
