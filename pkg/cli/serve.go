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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cocktail-explorer/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web explorer",
		Description: `Serves the explorer page on / and the JSON API under /v1.

The listen port comes from PORT (default 8080).`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "concurrency",
				Usage:   "parallel lookups for ingredient searches",
				Sources: cli.EnvVars(api.EnvLookupConcurrency),
			},
			&cli.BoolFlag{
				Name:    "cache-errors",
				Usage:   "cache failed upstream responses for the cache TTL",
				Sources: cli.EnvVars(api.EnvCacheErrors),
			},
			&cli.BoolFlag{
				Name:    "secure-cookie",
				Usage:   "mark the session cookie Secure (serve behind TLS)",
				Sources: cli.EnvVars(api.EnvSecureCookie),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, serveConfig(cmd))
		},
	}
}

// serveConfig overlays flags on the environment configuration.
func serveConfig(cmd *cli.Command) api.Config {
	cfg := api.NewConfig()
	cfg.APIBase = cmd.String("api-base")
	cfg.FavoritesFile = cmd.String("favorites")
	cfg.FavoritesDSN = cmd.String("favorites-dsn")
	// The root default suits one-shot commands; the server keeps its own.
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("concurrency") {
		cfg.LookupConcurrency = int(cmd.Int("concurrency"))
	}
	if cmd.IsSet("cache-errors") {
		cfg.CacheErrors = cmd.Bool("cache-errors")
	}
	if cmd.IsSet("secure-cookie") {
		cfg.SecureCookie = cmd.Bool("secure-cookie")
	}
	return cfg
}
