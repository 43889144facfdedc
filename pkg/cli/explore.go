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
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cocktail-explorer/pkg/api"
	"github.com/NVIDIA/cocktail-explorer/pkg/cocktail"
	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
)

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search recipes by name, or by ingredient with --ingredient",
		ArgsUsage: "TERM",
		Description: `Search by name returns every recipe whose name matches TERM.

With --ingredient, TERM is an ingredient: the top --limit matches are
looked up one by one. Lookups that fail are skipped.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "ingredient",
				Aliases: []string{"i"},
				Usage:   "treat TERM as an ingredient",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   defaults.IngredientResults,
				Usage: fmt.Sprintf("recipes to fetch for an ingredient search (%d-%d)",
					defaults.MinIngredientResults, defaults.MaxIngredientResults),
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "parallel lookups for an ingredient search (0 or 1 looks up one at a time)",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Value: true,
				Usage: "report ingredient lookup progress on stderr",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			term := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(term) == "" {
				return fmt.Errorf("search term is required")
			}

			q := api.Query{Mode: api.ModeName, Term: term}
			opts := []cocktail.Option{}
			if cmd.Bool("ingredient") {
				q.Mode = api.ModeIngredient
				q.Limit = int(cmd.Int("limit"))
				if q.Limit < defaults.MinIngredientResults {
					return fmt.Errorf("--limit must be at least %d", defaults.MinIngredientResults)
				}
				opts = append(opts, cocktail.WithLookupConcurrency(int(cmd.Int("concurrency"))))
				if cmd.Bool("progress") {
					opts = append(opts, cocktail.WithProgress(progressReporter(errWriter(cmd))))
				}
			}

			res, err := api.Search(ctx, newClient(cmd, opts...), nil, q)
			if err != nil {
				return err
			}
			return emit(ctx, cmd, res, res.Notice)
		},
	}
}

func lookupCmd() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Show the full recipe for an id",
		ArgsUsage: "ID",
		Flags: []cli.Flag{
			haveFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("exactly one recipe id is required")
			}

			rec, found, n, err := api.Lookup(ctx, newClient(cmd), cmd.Args().First())
			if err != nil {
				return err
			}
			if !found {
				return emit(ctx, cmd, api.DetailResult{Notice: n}, n)
			}
			res := api.NewDetailResult(rec, false, cmd.String("have"))
			return emit(ctx, cmd, res, res.Notice)
		},
	}
}

func randomCmd() *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "Show a random recipe",
		Flags: []cli.Flag{
			haveFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rec, found, n := api.Random(ctx, newClient(cmd))
			if !found {
				return emit(ctx, cmd, api.DetailResult{Notice: n}, n)
			}
			res := api.NewDetailResult(rec, false, cmd.String("have"))
			return emit(ctx, cmd, res, res.Notice)
		},
	}
}

// progressReporter writes a one-line counter that is rewritten in place.
func progressReporter(w io.Writer) cocktail.ProgressFunc {
	return func(done, total int) {
		fmt.Fprintf(w, "\rLoading full recipes %d/%d", done, total)
		if done == total {
			fmt.Fprintln(w)
		}
	}
}
