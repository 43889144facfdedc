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

// Package defaults provides centralized configuration constants for the
// cocktail explorer.
//
// This package defines timeout values, cache lifetimes, and presentation
// limits used across the codebase. Centralizing these values keeps the
// fetch layer, cache, HTTP handlers, and CLI consistent.
//
// # Categories
//
//   - Upstream timeouts: for requests to the recipe API
//   - Cache and session lifetimes
//   - Handler timeouts: for HTTP request processing
//   - Server timeouts: for HTTP server configuration
//   - Search and presentation limits
//
// # Usage
//
//	import "github.com/NVIDIA/cocktail-explorer/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.LookupHandlerTimeout)
//	defer cancel()
//
// The only timeout enforced on upstream traffic is FetchTimeout, applied
// per request. A multi-lookup ingredient search has no overall budget
// beyond the handler timeout of the HTTP request that started it.
package defaults
