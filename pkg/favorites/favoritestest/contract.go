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

// Package favoritestest holds the behaviour every favorites.Repository
// must satisfy.
package favoritestest

import (
	"context"
	"reflect"
	"testing"

	"github.com/NVIDIA/cocktail-explorer/pkg/favorites"
)

// CleanupFunc releases a repository created by a Factory.
type CleanupFunc = func()

// Factory returns an empty repository.
type Factory func(t *testing.T) (favorites.Repository, CleanupFunc)

// RunRepository runs the repository contract against repositories built by
// newRepo.
func RunRepository(t *testing.T, newRepo Factory) {
	t.Helper()

	t.Run("empty", func(t *testing.T) {
		repo := build(t, newRepo)
		got, err := repo.Load(context.Background())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no entries, got %+v", got)
		}
	})

	t.Run("save and load keep order", func(t *testing.T) {
		repo := build(t, newRepo)
		ctx := context.Background()
		want := []favorites.Entry{
			{ID: "11007", Title: "Margarita"},
			{ID: "11000", Title: "Mojito"},
			{ID: "17222", Title: "A1"},
		}
		if err := repo.Save(ctx, want); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Load = %+v, want %+v", got, want)
		}
	})

	t.Run("save replaces", func(t *testing.T) {
		repo := build(t, newRepo)
		ctx := context.Background()
		if err := repo.Save(ctx, []favorites.Entry{{ID: "1", Title: "One"}, {ID: "2", Title: "Two"}}); err != nil {
			t.Fatalf("Save: %v", err)
		}
		want := []favorites.Entry{{ID: "3", Title: "Three"}}
		if err := repo.Save(ctx, want); err != nil {
			t.Fatalf("Save overwrite: %v", err)
		}
		got, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Load = %+v, want %+v", got, want)
		}
	})

	t.Run("save empty", func(t *testing.T) {
		repo := build(t, newRepo)
		ctx := context.Background()
		if err := repo.Save(ctx, []favorites.Entry{{ID: "1", Title: "One"}}); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if err := repo.Save(ctx, nil); err != nil {
			t.Fatalf("Save nil: %v", err)
		}
		got, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no entries, got %+v", got)
		}
	})

	t.Run("loaded list is a copy", func(t *testing.T) {
		repo := build(t, newRepo)
		ctx := context.Background()
		if err := repo.Save(ctx, []favorites.Entry{{ID: "1", Title: "One"}}); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, _ := repo.Load(ctx)
		got[0].Title = "changed"
		again, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if again[0].Title != "One" {
			t.Fatalf("mutating a loaded list changed the store: %+v", again)
		}
	})

	t.Run("store over repository", func(t *testing.T) {
		store := favorites.NewStore(build(t, newRepo))
		ctx := context.Background()

		added, err := store.AddIfAbsent(ctx, favorites.Entry{ID: "11007", Title: "Margarita"})
		if err != nil || !added {
			t.Fatalf("AddIfAbsent: added=%v err=%v", added, err)
		}
		added, err = store.AddIfAbsent(ctx, favorites.Entry{ID: "11007", Title: "Margarita"})
		if err != nil || added {
			t.Fatalf("second AddIfAbsent: added=%v err=%v", added, err)
		}
		if got := store.Load(ctx); len(got) != 1 {
			t.Fatalf("expected one entry, got %+v", got)
		}
		removed, err := store.RemoveByID(ctx, "11007")
		if err != nil || !removed {
			t.Fatalf("RemoveByID: removed=%v err=%v", removed, err)
		}
		if store.Contains(ctx, "11007") {
			t.Fatal("entry still present after removal")
		}
	})
}

func build(t *testing.T, newRepo Factory) favorites.Repository {
	t.Helper()
	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}
	return repo
}
