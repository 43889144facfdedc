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

package server

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	cerrors "github.com/NVIDIA/cocktail-explorer/pkg/errors"
	"github.com/NVIDIA/cocktail-explorer/pkg/serializer"
)

// IndexPath lists the registered routes for API clients.
const IndexPath = "/v1"

// IndexResponse is returned by the index route.
type IndexResponse struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Ready     bool     `json:"ready"`
	Timestamp string   `json:"timestamp"`
	Routes    []string `json:"routes"`
}

func (s *Server) setupRoutes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	if len(s.config.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   s.config.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			AllowedHeaders:   []string{"Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id", "X-API-Version"},
			AllowCredentials: true,
		}).Handler)
	}

	// System endpoints (no rate limiting)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(s.middlewares()...)

		r.NotFound(func(w http.ResponseWriter, req *http.Request) {
			WriteError(w, req, http.StatusNotFound, cerrors.ErrCodeNotFound,
				"Route not found", false, map[string]any{"path": req.URL.Path})
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
			WriteError(w, req, http.StatusMethodNotAllowed, cerrors.ErrCodeMethodNotAllowed,
				"Method not allowed", false, map[string]any{"method": req.Method})
		})

		r.Get(IndexPath, s.handleIndex)
		for path, h := range s.handlers {
			r.Handle(path, h)
		}
		for _, fn := range s.routes {
			fn(r)
		}
	})

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling index route",
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := IndexResponse{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    s.routeList(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

func (s *Server) routeList() []string {
	var routes []string
	_ = chi.Walk(s.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, method+" "+route)
		return nil
	})
	sort.Strings(routes)
	return routes
}
