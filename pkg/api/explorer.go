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
	"fmt"
	"strings"

	"github.com/NVIDIA/cocktail-explorer/pkg/cocktail"
	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
	cerrors "github.com/NVIDIA/cocktail-explorer/pkg/errors"
	"github.com/NVIDIA/cocktail-explorer/pkg/favorites"
	"github.com/NVIDIA/cocktail-explorer/pkg/recipe"
	"github.com/NVIDIA/cocktail-explorer/pkg/shopping"
)

// Search modes.
const (
	ModeName       = "name"
	ModeIngredient = "ingredient"
)

// Query describes a search.
type Query struct {
	Mode  string
	Term  string
	Limit int
}

// ParseMode validates a search mode. Empty selects ModeName.
func ParseMode(s string) (string, error) {
	switch m := strings.ToLower(strings.TrimSpace(s)); m {
	case "":
		return ModeName, nil
	case ModeName, ModeIngredient:
		return m, nil
	default:
		return "", cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			"search mode must be name or ingredient", map[string]any{"mode": s})
	}
}

// SearchResult is a search outcome ready for display.
type SearchResult struct {
	Notice     `yaml:",inline"`
	Mode       string        `json:"mode" yaml:"mode"`
	Query      string        `json:"query" yaml:"query"`
	Limit      int           `json:"limit,omitempty" yaml:"limit,omitempty"`
	Candidates int           `json:"candidates" yaml:"candidates"`
	Results    []recipe.Card `json:"results" yaml:"results"`
}

// TableHeader implements serializer.Tabular.
func (r SearchResult) TableHeader() []string {
	return []string{"ID", "NAME", "CATEGORY", "ALCOHOLIC", "GLASS", "INGREDIENTS"}
}

// TableRows implements serializer.Tabular.
func (r SearchResult) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, c := range r.Results {
		rows = append(rows, []string{
			c.ID, c.Title, c.Category, c.Alcoholic, c.Glass,
			strings.Join(c.IngredientNames(), ", "),
		})
	}
	return rows
}

// Search runs q against c. Invalid input is returned as an error; an
// upstream failure is reported in the result's notice instead.
// isFavorite may be nil.
func Search(ctx context.Context, c *cocktail.Client, isFavorite func(id string) bool, q Query) (SearchResult, error) {
	mode, err := ParseMode(q.Mode)
	if err != nil {
		return SearchResult{}, err
	}
	term := strings.TrimSpace(q.Term)
	if term == "" {
		return SearchResult{}, cerrors.New(cerrors.ErrCodeInvalidRequest, "search term is required")
	}

	res := SearchResult{Mode: mode, Query: term, Results: []recipe.Card{}}

	if mode == ModeName {
		raws, err := c.SearchByName(ctx, term)
		switch {
		case err != nil:
			res.Notice = apiError(err)
		case len(raws) == 0:
			res.Notice = notice(LevelInfo, MsgNoNameResults)
		default:
			res.Candidates = len(raws)
			res.Results = recipe.NewCards(recipe.FromRawList(raws), isFavorite)
			res.Notice = notice(LevelSuccess, fmt.Sprintf("Found %d result(s).", len(raws)))
		}
		return res, nil
	}

	res.Limit = defaults.ClampIngredientResults(q.Limit)
	found, err := c.SearchByIngredient(ctx, term, res.Limit)
	res.Candidates = found.Candidates
	res.Results = recipe.NewCards(recipe.FromRawList(found.Recipes), isFavorite)

	switch {
	case err != nil && found.Candidates == 0:
		res.Notice = apiError(err)
	case found.NoCandidates():
		res.Notice = notice(LevelInfo, MsgNoIngredientResults)
	case found.Unresolved():
		res.Notice = notice(LevelWarning, MsgNoDetailedRecipes)
	case err != nil:
		res.Notice = notice(LevelWarning, MsgAPIErrorPrefix+cerrors.Message(err))
	default:
		res.Notice = notice(LevelSuccess, fmt.Sprintf("Found %d candidate(s).", found.Candidates))
	}
	return res, nil
}

// DetailResult is the detail view of one recipe, or a notice saying why
// there is none.
type DetailResult struct {
	Notice `yaml:",inline"`
	Recipe *recipe.Detail `json:"recipe,omitempty" yaml:"recipe,omitempty"`
	AllSet bool           `json:"allSet" yaml:"allSet"`
}

// TableHeader implements serializer.Tabular.
func (d DetailResult) TableHeader() []string {
	return []string{"INGREDIENT", "MEASURE", "MISSING"}
}

// TableRows implements serializer.Tabular.
func (d DetailResult) TableRows() [][]string {
	if d.Recipe == nil {
		return nil
	}
	missing := make(map[string]bool, len(d.Recipe.Missing))
	for _, m := range d.Recipe.Missing {
		missing[m] = true
	}
	rows := make([][]string, 0, len(d.Recipe.Ingredients))
	for _, ing := range d.Recipe.Ingredients {
		flag := ""
		if d.Recipe.Have != "" && missing[ing.Name] {
			flag = "yes"
		}
		rows = append(rows, []string{ing.Name, ing.Measure, flag})
	}
	return rows
}

// NewDetailResult builds the detail view of r.
func NewDetailResult(r recipe.Recipe, favorite bool, haveCSV string) DetailResult {
	d := recipe.NewDetail(r, favorite, haveCSV)
	res := DetailResult{Recipe: &d, AllSet: d.AllSet()}
	if res.AllSet {
		res.Notice = notice(LevelSuccess, MsgAllSet)
	}
	return res
}

// Lookup fetches the recipe with id. found is false when there is nothing
// to show; the result's notice then says why.
func Lookup(ctx context.Context, c *cocktail.Client, id string) (r recipe.Recipe, found bool, n Notice, err error) {
	raw, ok, err := c.LookupByID(ctx, id)
	switch {
	case cerrors.CodeOf(err) == cerrors.ErrCodeInvalidRequest:
		return recipe.Recipe{}, false, Notice{}, err
	case err != nil:
		return recipe.Recipe{}, false, apiError(err), nil
	case !ok:
		return recipe.Recipe{}, false, notice(LevelInfo, MsgRecipeNotFound), nil
	}
	return recipe.FromRaw(raw), true, Notice{}, nil
}

// Random fetches a random recipe. found is false when the fetch failed.
func Random(ctx context.Context, c *cocktail.Client) (r recipe.Recipe, found bool, n Notice) {
	raw, err := c.Random(ctx)
	if err != nil {
		return recipe.Recipe{}, false, notice(LevelError, MsgRandomFailed)
	}
	return recipe.FromRaw(raw), true, Notice{}
}

// FavoriteView is a saved recipe with its video link.
type FavoriteView struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	VideoURL string `json:"videoUrl" yaml:"videoUrl"`
}

// FavoritesResult lists saved recipes.
type FavoritesResult struct {
	Notice    `yaml:",inline"`
	Favorites []FavoriteView `json:"favorites" yaml:"favorites"`
	// Saved is set by mutations: whether the affected entry is saved afterwards.
	Saved *bool `json:"saved,omitempty" yaml:"saved,omitempty"`
}

// TableHeader implements serializer.Tabular.
func (f FavoritesResult) TableHeader() []string {
	return []string{"ID", "TITLE", "VIDEO"}
}

// TableRows implements serializer.Tabular.
func (f FavoritesResult) TableRows() [][]string {
	rows := make([][]string, 0, len(f.Favorites))
	for _, v := range f.Favorites {
		rows = append(rows, []string{v.ID, v.Title, v.VideoURL})
	}
	return rows
}

// ListFavorites returns the saved recipes.
func ListFavorites(ctx context.Context, store *favorites.Store) FavoritesResult {
	list := store.Load(ctx)
	res := FavoritesResult{Favorites: make([]FavoriteView, 0, len(list))}
	for _, e := range list {
		res.Favorites = append(res.Favorites, FavoriteView{
			ID:       e.ID,
			Title:    e.Title,
			VideoURL: recipe.YouTubeSearchLink(e.Title),
		})
	}
	if len(res.Favorites) == 0 {
		res.Notice = notice(LevelInfo, MsgNoFavorites)
	}
	return res
}

// AddFavorite saves e unless its id is already saved.
func AddFavorite(ctx context.Context, store *favorites.Store, e favorites.Entry) (FavoritesResult, error) {
	added, err := store.AddIfAbsent(ctx, e)
	if err != nil {
		return FavoritesResult{}, err
	}
	saved := true
	res := ListFavorites(ctx, store)
	res.Saved = &saved
	if added {
		res.Notice = notice(LevelSuccess, MsgSavedToFavorites)
	} else {
		res.Notice = notice(LevelInfo, MsgAlreadyInFavorites)
	}
	return res, nil
}

// RemoveFavorite deletes the entry with id.
func RemoveFavorite(ctx context.Context, store *favorites.Store, id string) (FavoritesResult, error) {
	if strings.TrimSpace(id) == "" {
		return FavoritesResult{}, cerrors.New(cerrors.ErrCodeInvalidRequest, "favorite id is required")
	}
	removed, err := store.RemoveByID(ctx, id)
	if err != nil {
		return FavoritesResult{}, err
	}
	res := ListFavorites(ctx, store)
	res.Saved = new(bool)
	if removed {
		res.Notice = notice(LevelInfo, MsgRemovedFromFavorites)
	} else {
		res.Notice = notice(LevelInfo, MsgNotInFavorites)
	}
	return res, nil
}

// ToggleFavorite saves e when absent and removes it when present.
func ToggleFavorite(ctx context.Context, store *favorites.Store, e favorites.Entry) (FavoritesResult, error) {
	saved, err := store.Toggle(ctx, e)
	if err != nil {
		return FavoritesResult{}, err
	}
	res := ListFavorites(ctx, store)
	res.Saved = &saved
	if saved {
		res.Notice = notice(LevelSuccess, MsgSaved)
	} else {
		res.Notice = notice(LevelInfo, MsgRemovedFromFavorites)
	}
	return res, nil
}

// MissingResult is a shopping list.
type MissingResult struct {
	Notice  `yaml:",inline"`
	Missing []string `json:"missing" yaml:"missing"`
	AllSet  bool     `json:"allSet" yaml:"allSet"`
}

// TableHeader implements serializer.Tabular.
func (m MissingResult) TableHeader() []string {
	return []string{"MISSING"}
}

// TableRows implements serializer.Tabular.
func (m MissingResult) TableRows() [][]string {
	rows := make([][]string, 0, len(m.Missing))
	for _, s := range m.Missing {
		rows = append(rows, []string{s})
	}
	return rows
}

// Missing diffs the ingredients on hand against needed.
func Missing(haveCSV string, needed []string) MissingResult {
	res := MissingResult{Missing: shopping.Missing(haveCSV, needed)}
	res.AllSet = len(res.Missing) == 0
	if res.AllSet {
		res.Notice = notice(LevelSuccess, MsgAllSet)
	}
	return res
}

// SplitList splits comma-separated values, trimming and dropping blanks.
func SplitList(values ...string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func apiError(err error) Notice {
	return notice(LevelError, MsgAPIErrorPrefix+cerrors.Message(err))
}
