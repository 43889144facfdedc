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

// Package server provides the HTTP server shared by the cocktail explorer
// binaries.
//
// The server owns routing (chi), the middleware chain, health probes and the
// Prometheus endpoint. Application handlers are supplied by the caller through
// options; the server knows nothing about recipes.
//
// # Middleware
//
// API routes pass through, outermost first:
//
//   - metrics: request count, latency and in-flight gauge per route pattern
//   - version: negotiates the API version from the Accept header
//   - request ID: accepts a valid X-Request-Id or generates a UUID
//   - panic recovery: converts panics into a structured 500
//   - rate limit: token bucket over all inbound requests (golang.org/x/time/rate)
//   - logging: one structured line per request
//
// /health, /ready and /metrics are registered outside the chain and are never
// rate limited.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cocktaild"),
//	    server.WithVersion(version),
//	    server.WithRoutes(func(r chi.Router) {
//	        r.Get("/v1/search", h.Search)
//	    }),
//	    server.WithBackground(func(ctx context.Context) error {
//	        return sessions.Run(ctx, defaults.SessionReapInterval)
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig reads:
//
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget (default 30)
//   - CORS_ALLOWED_ORIGINS: comma-separated origins; CORS is off when empty
//
// # Errors
//
// Every error reply is an ErrorResponse carrying a stable code from
// pkg/errors, the request ID and a retryable hint. WriteErrorFromErr maps a
// StructuredError code to its HTTP status with HTTPStatusFromCode.
package server
