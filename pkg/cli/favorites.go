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
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cocktail-explorer/pkg/api"
	"github.com/NVIDIA/cocktail-explorer/pkg/favorites"
)

func favoritesCmd() *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage saved recipes",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List saved recipes",
				Action: withStore(func(ctx context.Context, cmd *cli.Command, store *favorites.Store) error {
					res := api.ListFavorites(ctx, store)
					return emit(ctx, cmd, res, res.Notice)
				}),
			},
			{
				Name:      "add",
				Usage:     "Save a recipe",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "title",
						Usage: "recipe title (looked up when omitted)",
					},
				},
				Action: withStore(func(ctx context.Context, cmd *cli.Command, store *favorites.Store) error {
					id, err := singleID(cmd)
					if err != nil {
						return err
					}

					title := strings.TrimSpace(cmd.String("title"))
					if title == "" {
						rec, found, n, err := api.Lookup(ctx, newClient(cmd), id)
						switch {
						case err != nil:
							return err
						case !found:
							return errors.New(n.Message)
						}
						title = rec.Title
					}

					res, err := api.AddFavorite(ctx, store, favorites.Entry{ID: id, Title: title})
					if err != nil {
						return err
					}
					return emit(ctx, cmd, res, res.Notice)
				}),
			},
			{
				Name:      "remove",
				Aliases:   []string{"rm"},
				Usage:     "Remove a saved recipe",
				ArgsUsage: "ID",
				Action: withStore(func(ctx context.Context, cmd *cli.Command, store *favorites.Store) error {
					id, err := singleID(cmd)
					if err != nil {
						return err
					}
					res, err := api.RemoveFavorite(ctx, store, id)
					if err != nil {
						return err
					}
					return emit(ctx, cmd, res, res.Notice)
				}),
			},
		},
	}
}

func withStore(fn func(context.Context, *cli.Command, *favorites.Store) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		store, closeFn, err := openStore(ctx, cmd)
		defer func() {
			if cerr := closeFn(); cerr != nil {
				slog.Warn("failed to close favorites", "error", cerr)
			}
		}()
		if err != nil {
			return err
		}
		return fn(ctx, cmd, store)
	}
}

func singleID(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 || strings.TrimSpace(cmd.Args().First()) == "" {
		return "", fmt.Errorf("exactly one recipe id is required")
	}
	return strings.TrimSpace(cmd.Args().First()), nil
}
