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
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
	cerrors "github.com/NVIDIA/cocktail-explorer/pkg/errors"
	"github.com/NVIDIA/cocktail-explorer/pkg/favorites"
	"github.com/NVIDIA/cocktail-explorer/pkg/serializer"
	"github.com/NVIDIA/cocktail-explorer/pkg/server"
	"github.com/NVIDIA/cocktail-explorer/pkg/session"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

// Explorer serves the JSON API and HTML UI over per-session state.
type Explorer struct {
	sessions  *session.Manager
	favorites *favorites.Store
}

// NewExplorer returns an Explorer over sessions and the favorites store.
func NewExplorer(sessions *session.Manager, store *favorites.Store) *Explorer {
	return &Explorer{sessions: sessions, favorites: store}
}

// Routes registers the explorer routes on r.
func (e *Explorer) Routes(r chi.Router) {
	r.Get("/", e.handlePage)
	r.Post("/ui/random", e.handlePageRandom)
	r.Post("/ui/favorites/{id}", e.handlePageFavorite)

	r.Get("/v1/search", e.handleSearch)
	r.Get("/v1/recipes/{id}", e.handleRecipe)
	r.Post("/v1/random", e.handleRandom)
	r.Get("/v1/selected", e.handleSelected)
	r.Delete("/v1/selected", e.handleClearSelected)
	r.Get("/v1/favorites", e.handleFavorites)
	r.Post("/v1/favorites", e.handleAddFavorite)
	r.Delete("/v1/favorites/{id}", e.handleRemoveFavorite)
	r.Post("/v1/favorites/{id}/toggle", e.handleToggleFavorite)
	r.Get("/v1/missing", e.handleMissing)
}

func (e *Explorer) isFavorite(ctx context.Context) func(id string) bool {
	saved := make(map[string]bool)
	for _, f := range e.favorites.Load(ctx) {
		saved[f.ID] = true
	}
	return func(id string) bool { return saved[id] }
}

func (e *Explorer) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.SearchHandlerTimeout)
	defer cancel()

	q, err := queryFromRequest(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid search", nil)
		return
	}

	sess := e.sessions.FromRequest(w, r)
	res, err := Search(ctx, sess.Client(), e.isFavorite(ctx), q)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid search", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}

func (e *Explorer) handleRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.LookupHandlerTimeout)
	defer cancel()

	sess := e.sessions.FromRequest(w, r)
	rec, found, n, err := Lookup(ctx, sess.Client(), chi.URLParam(r, "id"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid recipe id", nil)
		return
	}
	if !found {
		serializer.RespondJSON(w, http.StatusOK, DetailResult{Notice: n})
		return
	}

	sess.Select(rec)
	serializer.RespondJSON(w, http.StatusOK,
		NewDetailResult(rec, e.favorites.Contains(ctx, rec.ID), r.URL.Query().Get("have")))
}

func (e *Explorer) handleRandom(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.LookupHandlerTimeout)
	defer cancel()

	sess := e.sessions.FromRequest(w, r)
	rec, found, n := Random(ctx, sess.Client())
	if !found {
		serializer.RespondJSON(w, http.StatusOK, DetailResult{Notice: n})
		return
	}

	sess.Select(rec)
	serializer.RespondJSON(w, http.StatusOK, NewDetailResult(rec, e.favorites.Contains(ctx, rec.ID), ""))
}

func (e *Explorer) handleSelected(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FavoritesHandlerTimeout)
	defer cancel()

	sess := e.sessions.FromRequest(w, r)
	rec, ok := sess.Selected()
	if !ok {
		serializer.RespondJSON(w, http.StatusOK, DetailResult{Notice: notice(LevelInfo, MsgNothingSelected)})
		return
	}
	serializer.RespondJSON(w, http.StatusOK,
		NewDetailResult(rec, e.favorites.Contains(ctx, rec.ID), r.URL.Query().Get("have")))
}

func (e *Explorer) handleClearSelected(w http.ResponseWriter, r *http.Request) {
	e.sessions.FromRequest(w, r).Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (e *Explorer) handleFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FavoritesHandlerTimeout)
	defer cancel()

	serializer.RespondJSON(w, http.StatusOK, ListFavorites(ctx, e.favorites))
}

func (e *Explorer) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FavoritesHandlerTimeout)
	defer cancel()

	var entry favorites.Entry
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&entry); err != nil {
		server.WriteError(w, r, http.StatusBadRequest, cerrors.ErrCodeInvalidRequest,
			"Invalid favorite body", false, map[string]any{"error": err.Error()})
		return
	}

	res, err := AddFavorite(ctx, e.favorites, entry)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to save favorite", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}

func (e *Explorer) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FavoritesHandlerTimeout)
	defer cancel()

	res, err := RemoveFavorite(ctx, e.favorites, chi.URLParam(r, "id"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to remove favorite", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}

func (e *Explorer) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FavoritesHandlerTimeout)
	defer cancel()

	sess := e.sessions.FromRequest(w, r)
	entry := e.entryFor(sess, chi.URLParam(r, "id"), r.URL.Query().Get("title"))

	res, err := ToggleFavorite(ctx, e.favorites, entry)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to update favorite", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, res)
}

func (e *Explorer) handleMissing(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	serializer.RespondJSON(w, http.StatusOK, Missing(q.Get("have"), SplitList(q["needed"]...)))
}

// entryFor builds a favorites entry for id. A blank title is taken from
// the session's selected recipe when it has the same id.
func (e *Explorer) entryFor(sess *session.Session, id, title string) favorites.Entry {
	id = strings.TrimSpace(id)
	title = strings.TrimSpace(title)
	if title == "" {
		if rec, ok := sess.Selected(); ok && rec.ID == id {
			title = rec.Title
		}
	}
	return favorites.Entry{ID: id, Title: title}
}

func queryFromRequest(r *http.Request) (Query, error) {
	v := r.URL.Query()
	q := Query{Mode: v.Get("mode"), Term: v.Get("q")}
	if s := v.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Query{}, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
				"limit must be a number", map[string]any{"limit": s})
		}
		if n < defaults.MinIngredientResults {
			return Query{}, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("limit must be at least %d", defaults.MinIngredientResults),
				map[string]any{"limit": n})
		}
		q.Limit = n
	}
	return q, nil
}
