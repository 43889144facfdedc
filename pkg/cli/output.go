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
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cocktail-explorer/pkg/api"
	"github.com/NVIDIA/cocktail-explorer/pkg/cache"
	"github.com/NVIDIA/cocktail-explorer/pkg/cocktail"
	"github.com/NVIDIA/cocktail-explorer/pkg/favorites"
	"github.com/NVIDIA/cocktail-explorer/pkg/fetch"
	"github.com/NVIDIA/cocktail-explorer/pkg/serializer"
)

// Flags are built per command tree; urfave flags keep parsed state.

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatTable),
		Usage:   fmt.Sprintf("output format (supported: %v)", serializer.SupportedFormats()),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func haveFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "have",
		Usage: "comma-separated ingredients on hand; marks the missing ones",
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// emit writes v in the selected format. For tables the notice goes to
// stderr since it is not part of the rows. An error-level notice fails the
// command after the output is written.
func emit(ctx context.Context, cmd *cli.Command, v any, n api.Notice) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		_ = w.Close()
	}()

	if err := w.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if format == serializer.FormatTable && !n.Empty() {
		fmt.Fprintln(errWriter(cmd), n.Message)
	}
	if n.Level == api.LevelError {
		return errors.New(n.Message)
	}
	return nil
}

// newClient returns a recipe client for one command run. Repeated lookups
// within the run are served from memory.
func newClient(cmd *cli.Command, opts ...cocktail.Option) *cocktail.Client {
	upstream := fetch.NewClient()
	c := cache.New(upstream, cache.WithName("cli"))
	opts = append([]cocktail.Option{
		cocktail.WithBaseURL(cmd.String("api-base")),
		cocktail.WithUncachedFetcher(upstream),
	}, opts...)
	return cocktail.NewClient(c, opts...)
}

// openStore opens the configured favorites repository. The returned close
// func is never nil.
func openStore(ctx context.Context, cmd *cli.Command) (*favorites.Store, func() error, error) {
	repo, closeFn, err := favorites.Open(ctx, cmd.String("favorites"), cmd.String("favorites-dsn"))
	if err != nil {
		return nil, closeFn, fmt.Errorf("failed to open favorites: %w", err)
	}
	return favorites.NewStore(repo), closeFn, nil
}
