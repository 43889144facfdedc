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
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cocktail-explorer/pkg/api"
	"github.com/NVIDIA/cocktail-explorer/pkg/cocktail"
	"github.com/NVIDIA/cocktail-explorer/pkg/favorites"
	"github.com/NVIDIA/cocktail-explorer/pkg/logging"
)

const (
	name           = "cocktail"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the CLI with os.Args. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Explore cocktail recipes",
		Description: `Search cocktails by name or ingredient, open recipes, keep favorites,
and work out what is missing for a recipe.

Ingredient searches look up the full recipe for each of the top matches.

The serve command starts the web explorer.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(api.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:    "api-base",
				Value:   cocktail.DefaultBaseURL,
				Usage:   "recipe API base URL",
				Sources: cli.EnvVars(api.EnvAPIBase),
			},
			&cli.StringFlag{
				Name:    "favorites",
				Value:   favorites.DefaultFile,
				Usage:   "favorites JSON file",
				Sources: cli.EnvVars(api.EnvFavoritesFile),
			},
			&cli.StringFlag{
				Name:    "favorites-dsn",
				Usage:   "postgres connection string; stores favorites in the database instead of the file",
				Sources: cli.EnvVars(api.EnvFavoritesDSN),
			},
			formatFlag(),
			outputFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			serveCmd(),
			searchCmd(),
			lookupCmd(),
			randomCmd(),
			favoritesCmd(),
			missingCmd(),
		},
	}
}
