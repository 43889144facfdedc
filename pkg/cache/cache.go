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

package cache

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
	cerrors "github.com/NVIDIA/cocktail-explorer/pkg/errors"
	"github.com/NVIDIA/cocktail-explorer/pkg/fetch"
)

// Option defines a configuration option for Cache.
type Option func(*Cache)

// WithTTL overrides how long an entry stays fresh.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithErrorCaching controls whether failed fetches are stored. When enabled
// the same error is returned until the entry expires.
func WithErrorCaching(enabled bool) Option {
	return func(c *Cache) {
		c.cacheErrors = enabled
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithName sets the label used for the cache metrics.
func WithName(name string) Option {
	return func(c *Cache) {
		if name != "" {
			c.name = name
		}
	}
}

type entry struct {
	body      []byte
	err       error
	fetchedAt time.Time
}

// Cache memoizes Fetch results by URL and parameter set for a fixed TTL.
// It is safe for concurrent use.
type Cache struct {
	upstream    fetch.Fetcher
	ttl         time.Duration
	cacheErrors bool
	now         func() time.Time
	name        string

	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
}

var _ fetch.Fetcher = (*Cache)(nil)

// New creates a Cache over upstream with a one hour TTL.
func New(upstream fetch.Fetcher, opts ...Option) *Cache {
	c := &Cache{
		upstream: upstream,
		ttl:      defaults.CacheTTL,
		now:      time.Now,
		name:     "default",
		entries:  make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the cache key for rawURL and params. Parameter order does
// not matter.
func Key(rawURL string, params url.Values) string {
	if len(params) == 0 {
		return rawURL
	}
	// Encode sorts by key.
	return rawURL + "?" + params.Encode()
}

// Fetch returns the stored result for rawURL and params when it is younger
// than the TTL, and otherwise fetches it from upstream. Concurrent misses
// for the same key share one upstream call. The shared call is detached from
// the caller's cancellation; a caller whose ctx ends stops waiting for it.
func (c *Cache) Fetch(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	key := Key(rawURL, params)

	if e, ok := c.lookup(key); ok {
		cacheHits.WithLabelValues(c.name).Inc()
		if e.err != nil {
			return nil, e.err
		}
		return e.body, nil
	}
	cacheMisses.WithLabelValues(c.name).Inc()

	if err := ctx.Err(); err != nil {
		return nil, callerError(err, rawURL)
	}

	// Upstream calls are bounded by the fetch client's own timeout.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		// Another caller may have filled the entry while we waited.
		if e, ok := c.lookup(key); ok {
			return e.body, e.err
		}

		body, ferr := c.upstream.Fetch(shared, rawURL, params)
		if ferr != nil {
			cacheErrors.WithLabelValues(c.name, string(cerrors.CodeOf(ferr))).Inc()
			if !c.cacheErrors || errors.Is(ferr, context.Canceled) {
				slog.Warn("upstream fetch failed, result not cached",
					"key", key, "error", ferr)
				return nil, ferr
			}
		}

		c.mu.Lock()
		c.entries[key] = entry{body: body, err: ferr, fetchedAt: c.now()}
		c.mu.Unlock()
		return body, ferr
	})

	select {
	case res := <-ch:
		if res.Shared {
			slog.Debug("collapsed concurrent cache miss", "key", key)
		}
		if res.Err != nil {
			return nil, res.Err
		}
		body, _ := res.Val.([]byte)
		return body, nil
	case <-ctx.Done():
		return nil, callerError(ctx.Err(), rawURL)
	}
}

// callerError reports the caller's own cancellation or deadline. It is
// never stored.
func callerError(err error, rawURL string) error {
	details := map[string]any{"url": rawURL}
	if errors.Is(err, context.DeadlineExceeded) {
		return cerrors.WrapWithContext(cerrors.ErrCodeTimeout, "request deadline exceeded", err, details)
	}
	return cerrors.WrapWithContext(cerrors.ErrCodeUnavailable, "request canceled", err, details)
}

func (c *Cache) lookup(key string) (entry, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.expired(e) {
		return entry{}, false
	}
	return e, true
}

func (c *Cache) expired(e entry) bool {
	return c.now().Sub(e.fetchedAt) >= c.ttl
}

// Len returns the number of stored entries, including expired ones not yet
// purged.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Purge removes expired entries and returns how many were dropped.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
