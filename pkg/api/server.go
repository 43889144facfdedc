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

package api

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/cocktail-explorer/pkg/cache"
	"github.com/NVIDIA/cocktail-explorer/pkg/cocktail"
	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
	"github.com/NVIDIA/cocktail-explorer/pkg/favorites"
	"github.com/NVIDIA/cocktail-explorer/pkg/fetch"
	"github.com/NVIDIA/cocktail-explorer/pkg/logging"
	"github.com/NVIDIA/cocktail-explorer/pkg/server"
	"github.com/NVIDIA/cocktail-explorer/pkg/session"
)

const (
	name           = "cocktaild"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/cocktail-explorer/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the explorer server and blocks until shutdown.
// It configures logging, opens the favorites repository, wires sessions
// and routes, and handles graceful shutdown.
func Serve(ctx context.Context, cfg Config) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"apiBase", cfg.APIBase,
	)

	repo, closeRepo, err := favorites.Open(ctx, cfg.FavoritesFile, cfg.FavoritesDSN)
	if err != nil {
		slog.Error("failed to open favorites", "error", err)
		return err
	}
	defer func() {
		if cerr := closeRepo(); cerr != nil {
			slog.Warn("failed to close favorites", "error", cerr)
		}
	}()

	explorer, sessions := NewExplorerFromConfig(cfg, repo)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithRoutes(explorer.Routes),
		server.WithBackground(func(ctx context.Context) error {
			return sessions.Run(ctx, defaults.SessionReapInterval)
		}),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewExplorerFromConfig builds an Explorer and its session manager over a
// fresh upstream client and repo.
func NewExplorerFromConfig(cfg Config, repo favorites.Repository) (*Explorer, *session.Manager) {
	upstream := fetch.NewClient(fetch.WithTimeout(defaults.FetchTimeout))

	sessions := session.NewManager(upstream,
		session.WithIdleTTL(cfg.SessionIdleTTL),
		session.WithSecureCookie(cfg.SecureCookie),
		session.WithCacheOptions(
			cache.WithTTL(cfg.CacheTTL),
			cache.WithErrorCaching(cfg.CacheErrors),
		),
		session.WithClientOptions(
			cocktail.WithBaseURL(cfg.APIBase),
			cocktail.WithLookupConcurrency(cfg.LookupConcurrency),
		),
	)

	return NewExplorer(sessions, favorites.NewStore(repo)), sessions
}

// Version returns the build version.
func Version() string {
	return version
}
