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

// Package api provides the cocktail explorer web service: a server-rendered
// HTML page and a JSON API over the same operations.
//
// # Usage
//
//	cfg := api.NewConfig()
//	if err := api.Serve(ctx, cfg); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
// HTML:
//   - GET  /                      - explorer page (q, mode, limit, view, have, favs)
//   - POST /ui/random             - open a random recipe
//   - POST /ui/favorites/{id}     - save (action=add) or toggle (action=toggle)
//
// JSON:
//   - GET    /v1/search?mode=name|ingredient&q=&limit=
//   - GET    /v1/recipes/{id}         - look up and open a recipe
//   - POST   /v1/random               - open a random recipe
//   - GET    /v1/selected?have=       - the open recipe with its shopping list
//   - DELETE /v1/selected             - close the open recipe
//   - GET    /v1/favorites
//   - POST   /v1/favorites            - body {"id","title"}
//   - DELETE /v1/favorites/{id}
//   - POST   /v1/favorites/{id}/toggle
//   - GET    /v1/missing?have=&needed=
//
// System endpoints (/health, /ready, /metrics, /v1) come from pkg/server.
//
// # Failures
//
// Upstream failures never fail a request. They are reported with status
// 200 and a notice ({"level":"error","message":"API error: ..."}), the way
// the page shows them. Invalid input is a 400 with a structured error.
//
// # Sessions
//
// The open recipe and the result cache are per browser session, keyed by
// the cocktail_session cookie. Idle sessions are reaped in the background.
//
// # Configuration
//
// NewConfig reads COCKTAIL_API_BASE, COCKTAIL_FAVORITES_FILE,
// COCKTAIL_FAVORITES_DSN, COCKTAIL_LOOKUP_CONCURRENCY,
// COCKTAIL_CACHE_ERRORS, COCKTAIL_SECURE_COOKIE and LOG_LEVEL. Server
// settings (PORT and friends) are read by pkg/server.
package api
