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

package defaults

import "time"

// Upstream recipe API timeouts.
const (
	// FetchTimeout is the total timeout for a single request to the recipe API.
	// No retries are attempted on top of it.
	FetchTimeout = 12 * time.Second

	// FetchConnectTimeout is the timeout for establishing upstream connections.
	FetchConnectTimeout = 5 * time.Second

	// FetchTLSHandshakeTimeout is the timeout for the upstream TLS handshake.
	FetchTLSHandshakeTimeout = 5 * time.Second

	// FetchIdleConnTimeout is the timeout for idle upstream connections in the pool.
	FetchIdleConnTimeout = 90 * time.Second

	// FetchKeepAlive is the keep-alive duration for upstream connections.
	FetchKeepAlive = 30 * time.Second
)

// Cache and session lifetimes.
const (
	// CacheTTL is how long a fetched upstream response stays fresh.
	CacheTTL = time.Hour

	// SessionIdleTTL is how long an unused browser session is kept before
	// its selected recipe and cache scope are dropped.
	SessionIdleTTL = 2 * time.Hour

	// SessionReapInterval is how often idle sessions are collected.
	SessionReapInterval = 5 * time.Minute
)

// Handler timeouts for HTTP request processing.
const (
	// SearchHandlerTimeout bounds a search request. Ingredient searches may
	// issue up to MaxIngredientResults+1 upstream calls.
	SearchHandlerTimeout = 3 * time.Minute

	// LookupHandlerTimeout bounds single lookup and random requests.
	LookupHandlerTimeout = 30 * time.Second

	// FavoritesHandlerTimeout bounds favorites reads and writes.
	FavoritesHandlerTimeout = 10 * time.Second
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Longer than SearchHandlerTimeout so slow ingredient searches can finish.
	ServerWriteTimeout = SearchHandlerTimeout + 30*time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Search and presentation limits.
const (
	// IngredientResults is the default number of stubs resolved by an
	// ingredient search.
	IngredientResults = 8

	// MinIngredientResults and MaxIngredientResults bound the result-count slider.
	MinIngredientResults = 1
	MaxIngredientResults = 12

	// SummaryInstructionsLength is the number of characters of instructions
	// shown on a summary card before truncation.
	SummaryInstructionsLength = 500

	// IngredientSlots is the number of numbered ingredient/measure fields
	// carried by an upstream recipe record.
	IngredientSlots = 15
)

// ClampIngredientResults bounds n to the supported ingredient result range.
// Zero or negative values mean "not set" and select the default, so a
// limit of 0 never yields zero stubs. The HTTP API and CLI reject
// user-supplied limits below MinIngredientResults before they get here.
func ClampIngredientResults(n int) int {
	switch {
	case n <= 0:
		return IngredientResults
	case n < MinIngredientResults:
		return MinIngredientResults
	case n > MaxIngredientResults:
		return MaxIngredientResults
	default:
		return n
	}
}
