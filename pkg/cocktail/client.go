// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package cocktail

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
	cerrors "github.com/NVIDIA/cocktail-explorer/pkg/errors"
	"github.com/NVIDIA/cocktail-explorer/pkg/fetch"
)

// DefaultBaseURL is the public recipe API.
const DefaultBaseURL = "https://www.thecocktaildb.com/api/json/v1/1"

const (
	searchPath = "/search.php"
	filterPath = "/filter.php"
	lookupPath = "/lookup.php"
	randomPath = "/random.php"
)

// ProgressFunc is called after each stub of an ingredient search is
// handled, resolved or not.
type ProgressFunc func(done, total int)

// Option defines a configuration option for Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithUncachedFetcher sets the fetcher used for random picks. Results of
// random.php must not be memoized.
func WithUncachedFetcher(f fetch.Fetcher) Option {
	return func(c *Client) {
		if f != nil {
			c.uncached = f
		}
	}
}

// WithLookupConcurrency sets how many lookups an ingredient search may run
// at once. Values below 2 keep lookups sequential.
func WithLookupConcurrency(n int) Option {
	return func(c *Client) {
		c.concurrency = n
	}
}

// WithProgress registers a callback for ingredient search progress.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Client) {
		c.progress = fn
	}
}

// WithLogger sets the logger used to report skipped lookups.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Client queries the recipe API. Name searches, filters, and lookups go
// through the given fetcher, which is normally a cache.
type Client struct {
	fetcher     fetch.Fetcher
	uncached    fetch.Fetcher
	baseURL     string
	concurrency int
	progress    ProgressFunc
	logger      *slog.Logger
}

// NewClient returns a Client reading through f.
func NewClient(f fetch.Fetcher, opts ...Option) *Client {
	c := &Client{
		fetcher: f,
		baseURL: DefaultBaseURL,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.uncached == nil {
		c.uncached = c.fetcher
	}
	return c
}

// BaseURL returns the API base URL in use.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SearchByName returns every recipe whose name matches term. A null or
// missing result list yields an empty slice. On failure the slice is empty
// and the error carries a displayable message.
func (c *Client) SearchByName(ctx context.Context, term string) ([]RawRecipe, error) {
	term, err := normalizeTerm(term)
	if err != nil {
		return []RawRecipe{}, err
	}

	var resp struct {
		Drinks json.RawMessage `json:"drinks"`
	}
	if err := c.get(ctx, c.fetcher, searchPath, url.Values{"s": {term}}, &resp); err != nil {
		return []RawRecipe{}, err
	}

	var drinks []RawRecipe
	if err := decodeList(resp.Drinks, &drinks); err != nil {
		return []RawRecipe{}, err
	}
	return compact(drinks), nil
}

// FilterByIngredient returns at most limit stubs for recipes containing
// ingredient, in API order. limit is clamped to the supported range.
func (c *Client) FilterByIngredient(ctx context.Context, ingredient string, limit int) ([]FilterStub, error) {
	ingredient, err := normalizeTerm(ingredient)
	if err != nil {
		return []FilterStub{}, err
	}
	limit = defaults.ClampIngredientResults(limit)

	var resp struct {
		Drinks json.RawMessage `json:"drinks"`
	}
	if err := c.get(ctx, c.fetcher, filterPath, url.Values{"i": {ingredient}}, &resp); err != nil {
		return []FilterStub{}, err
	}

	var stubs []FilterStub
	if err := decodeList(resp.Drinks, &stubs); err != nil {
		return []FilterStub{}, err
	}
	if stubs == nil {
		stubs = []FilterStub{}
	}
	if len(stubs) > limit {
		stubs = stubs[:limit]
	}
	return stubs, nil
}

// LookupByID returns the full recipe for id. The bool is false when the
// API has no record for it.
func (c *Client) LookupByID(ctx context.Context, id string) (RawRecipe, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false, cerrors.New(cerrors.ErrCodeInvalidRequest, "recipe id is required")
	}

	var resp struct {
		Drinks json.RawMessage `json:"drinks"`
	}
	if err := c.get(ctx, c.fetcher, lookupPath, url.Values{"i": {id}}, &resp); err != nil {
		return nil, false, err
	}

	var drinks []RawRecipe
	if err := decodeList(resp.Drinks, &drinks); err != nil {
		return nil, false, err
	}
	drinks = compact(drinks)
	if len(drinks) == 0 {
		return nil, false, nil
	}
	return drinks[0], true, nil
}

// SearchByIngredient filters by ingredient and then looks up each stub.
// Stubs without an id and lookups that fail or find nothing are skipped
// and logged. Only a failure of the filter itself is returned as an error.
func (c *Client) SearchByIngredient(ctx context.Context, ingredient string, limit int) (IngredientResult, error) {
	stubs, err := c.FilterByIngredient(ctx, ingredient, limit)
	if err != nil {
		return IngredientResult{Recipes: []RawRecipe{}}, err
	}

	res := IngredientResult{
		Candidates: len(stubs),
		Recipes:    c.resolve(ctx, stubs),
	}

	if err := ctx.Err(); err != nil && len(res.Recipes) < res.Candidates {
		return res, cerrors.Wrap(cerrors.ErrCodeTimeout, "ingredient search did not finish", err)
	}
	return res, nil
}

// Random returns one random recipe. It always goes to the network.
func (c *Client) Random(ctx context.Context) (RawRecipe, error) {
	var resp struct {
		Drinks json.RawMessage `json:"drinks"`
	}
	if err := c.get(ctx, c.uncached, randomPath, nil, &resp); err != nil {
		return nil, err
	}

	var drinks []RawRecipe
	if err := decodeList(resp.Drinks, &drinks); err != nil {
		return nil, err
	}
	drinks = compact(drinks)
	if len(drinks) == 0 {
		return nil, cerrors.New(cerrors.ErrCodeNotFound, "random fetch returned no recipe")
	}
	return drinks[0], nil
}

func (c *Client) resolve(ctx context.Context, stubs []FilterStub) []RawRecipe {
	total := len(stubs)
	found := make([]RawRecipe, total)

	var (
		mu   sync.Mutex
		done int
	)
	report := func() {
		if c.progress == nil {
			return
		}
		mu.Lock()
		done++
		c.progress(done, total)
		mu.Unlock()
	}

	lookup := func(i int) {
		defer report()
		stub := stubs[i]
		if strings.TrimSpace(stub.ID) == "" {
			c.logger.Warn("skipping stub without id", "position", i, "name", stub.Name)
			lookupSkips.WithLabelValues("missing_id").Inc()
			return
		}
		rec, ok, err := c.LookupByID(ctx, stub.ID)
		switch {
		case err != nil:
			c.logger.Warn("recipe lookup failed", "id", stub.ID, "error", err)
			lookupSkips.WithLabelValues(string(cerrors.CodeOf(err))).Inc()
		case !ok:
			c.logger.Warn("recipe lookup returned no record", "id", stub.ID)
			lookupSkips.WithLabelValues("empty").Inc()
		default:
			found[i] = rec
		}
	}

	if c.concurrency < 2 {
		for i := range stubs {
			lookup(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(c.concurrency)
		for i := range stubs {
			g.Go(func() error {
				lookup(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	return compact(found)
}

func (c *Client) get(ctx context.Context, f fetch.Fetcher, path string, params url.Values, v any) error {
	body, err := f.Fetch(ctx, c.baseURL+path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeInvalidResponse,
			"recipe API returned an unexpected document", err,
			map[string]any{"path": path})
	}
	return nil
}

// decodeList decodes a drinks value. Null, a missing field, or a non-list
// value (the API answers some misses with a string) decode to nothing.
func decodeList(raw json.RawMessage, v any) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || !strings.HasPrefix(trimmed, "[") {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidResponse,
			"recipe API returned an unexpected result list", err)
	}
	return nil
}

func compact(in []RawRecipe) []RawRecipe {
	out := make([]RawRecipe, 0, len(in))
	for _, r := range in {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func normalizeTerm(term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", cerrors.New(cerrors.ErrCodeInvalidRequest, "search term is required")
	}
	return term, nil
}
