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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cocktail-explorer/pkg/api"
)

func missingCmd() *cli.Command {
	return &cli.Command{
		Name:  "missing",
		Usage: "List the ingredients you still need",
		Description: `Compares the ingredients on hand (--have) with what a recipe needs,
given either directly (--needed) or by recipe id (--recipe). Matching
ignores case and surrounding spaces.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "have",
				Usage: "comma-separated ingredients on hand",
			},
			&cli.StringSliceFlag{
				Name:  "needed",
				Usage: "needed ingredients; repeat the flag or separate with commas",
			},
			&cli.StringFlag{
				Name:  "recipe",
				Usage: "take the needed ingredients from this recipe id",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			needed := api.SplitList(cmd.StringSlice("needed")...)

			if id := cmd.String("recipe"); id != "" {
				rec, found, n, err := api.Lookup(ctx, newClient(cmd), id)
				switch {
				case err != nil:
					return err
				case !found:
					return errors.New(n.Message)
				}
				needed = append(needed, rec.IngredientNames()...)
			}

			res := api.Missing(cmd.String("have"), needed)
			return emit(ctx, cmd, res, res.Notice)
		},
	}
}
