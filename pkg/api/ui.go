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
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
	cerrors "github.com/NVIDIA/cocktail-explorer/pkg/errors"
	"github.com/NVIDIA/cocktail-explorer/pkg/server"
	"github.com/NVIDIA/cocktail-explorer/pkg/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// page is the data rendered by the index template.
type page struct {
	Mode          string
	Query         string
	Limit         int
	MinLimit      int
	MaxLimit      int
	ShowFavorites bool
	Have          string

	Notices   []Notice
	Search    *SearchResult
	Detail    *DetailResult
	Favorites *FavoritesResult
}

func (p *page) addNotice(n Notice) {
	if !n.Empty() {
		p.Notices = append(p.Notices, n)
	}
}

func newPage(r *http.Request) *page {
	v := r.URL.Query()
	if r.Method == http.MethodPost {
		v = r.Form
	}
	p := &page{
		Mode:          ModeName,
		Query:         strings.TrimSpace(v.Get("q")),
		Limit:         defaults.IngredientResults,
		MinLimit:      defaults.MinIngredientResults,
		MaxLimit:      defaults.MaxIngredientResults,
		ShowFavorites: v.Get("favs") != "",
		Have:          v.Get("have"),
	}
	if m, err := ParseMode(v.Get("mode")); err == nil {
		p.Mode = m
	}
	if n, err := strconv.Atoi(v.Get("limit")); err == nil && n >= defaults.MinIngredientResults {
		p.Limit = defaults.ClampIngredientResults(n)
	}
	return p
}

// handlePage renders the explorer. Query parameters drive what is shown:
// q/mode/limit run a search, view opens a recipe, have fills the shopping
// list, favs lists favorites.
func (e *Explorer) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.SearchHandlerTimeout)
	defer cancel()

	sess := e.sessions.FromRequest(w, r)
	p := newPage(r)

	if p.Query != "" {
		res, err := Search(ctx, sess.Client(), e.isFavorite(ctx), Query{Mode: p.Mode, Term: p.Query, Limit: p.Limit})
		if err != nil {
			p.addNotice(notice(LevelError, cerrors.Message(err)))
		} else {
			p.Search = &res
			p.addNotice(res.Notice)
		}
	}

	if id := strings.TrimSpace(r.URL.Query().Get("view")); id != "" {
		rec, found, n, err := Lookup(ctx, sess.Client(), id)
		switch {
		case err != nil:
			p.addNotice(notice(LevelError, cerrors.Message(err)))
		case !found:
			p.addNotice(n)
		default:
			sess.Select(rec)
		}
	}

	e.render(ctx, w, sess, p)
}

func (e *Explorer) handlePageRandom(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.LookupHandlerTimeout)
	defer cancel()

	_ = r.ParseForm()
	sess := e.sessions.FromRequest(w, r)
	p := newPage(r)

	if rec, found, n := Random(ctx, sess.Client()); found {
		sess.Select(rec)
	} else {
		p.addNotice(n)
	}

	e.render(ctx, w, sess, p)
}

// handlePageFavorite saves a recipe from a card (action=add) or flips the
// selected recipe's favorite state (action=toggle).
func (e *Explorer) handlePageFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.FavoritesHandlerTimeout)
	defer cancel()

	_ = r.ParseForm()
	sess := e.sessions.FromRequest(w, r)
	p := newPage(r)
	entry := e.entryFor(sess, chi.URLParam(r, "id"), r.Form.Get("title"))

	var (
		res FavoritesResult
		err error
	)
	if r.Form.Get("action") == "toggle" {
		res, err = ToggleFavorite(ctx, e.favorites, entry)
	} else {
		res, err = AddFavorite(ctx, e.favorites, entry)
	}
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to update favorite", nil)
		return
	}
	p.addNotice(res.Notice)

	e.render(ctx, w, sess, p)
}

// render fills the detail and favorites sections from the session and
// writes the page.
func (e *Explorer) render(ctx context.Context, w http.ResponseWriter, sess *session.Session, p *page) {
	if rec, ok := sess.Selected(); ok {
		d := NewDetailResult(rec, e.favorites.Contains(ctx, rec.ID), p.Have)
		p.Detail = &d
	}
	if p.ShowFavorites {
		f := ListFavorites(ctx, e.favorites)
		p.Favorites = &f
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, p); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
