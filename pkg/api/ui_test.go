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
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestPageEmpty(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/", nil)
	expectStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected html content type, got %q", ct)
	}
	body := w.Body.String()
	for _, want := range []string{"Cocktail Explorer", `name="q"`, `max="12"`, `value="8"`} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
	if len(env.cookies) == 0 {
		t.Error("expected session cookie to be set")
	}
}

func TestPageSearch(t *testing.T) {
	env := newTestEnv(t)

	body := env.do(t, http.MethodGet, "/?mode=name&q=margarita", nil).Body.String()
	for _, want := range []string{"Found 1 result(s).", "Margarita", "Category: Ordinary Drink • Alcoholic",
		"search_query=Margarita", "View full (11007)"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}

	body = env.do(t, http.MethodGet, "/?mode=ingredient&q=ghost", nil).Body.String()
	if !strings.Contains(body, "Could not retrieve detailed recipes (API or network issue).") {
		t.Error("expected unresolved notice")
	}

	body = env.do(t, http.MethodGet, "/?q=boom", nil).Body.String()
	if !strings.Contains(body, "API error: ") {
		t.Error("expected API error notice")
	}
}

func TestPageViewAndShoppingList(t *testing.T) {
	env := newTestEnv(t)

	body := env.do(t, http.MethodGet, "/?view=11007", nil).Body.String()
	for _, want := range []string{"Ingredients &amp; Measures", "Rub the rim of the glass with lime.",
		"Save to favorites", "Search video on YouTube"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected detail to contain %q", want)
		}
	}

	body = env.do(t, http.MethodGet, "/?have="+url.QueryEscape("tequila, triple sec"), nil).Body.String()
	if !strings.Contains(body, "<li>Lime juice</li>") {
		t.Error("expected lime juice to be missing")
	}

	body = env.do(t, http.MethodGet, "/?have="+url.QueryEscape("tequila, triple sec, lime juice"), nil).Body.String()
	if !strings.Contains(body, "You're set — no missing ingredients!") {
		t.Error("expected all-set message")
	}
}

func TestPageRandomAndFavorites(t *testing.T) {
	env := newTestEnv(t)

	body := env.do(t, http.MethodPost, "/ui/random", nil).Body.String()
	if !strings.Contains(body, "<h2>Margarita</h2>") {
		t.Fatal("expected random recipe in detail view")
	}

	form := strings.NewReader(url.Values{"action": {"toggle"}}.Encode())
	w := env.doForm(t, "/ui/favorites/11007", form)
	expectStatus(t, w, http.StatusOK)
	body = w.Body.String()
	if !strings.Contains(body, "Saved!") || !strings.Contains(body, "Remove from favorites") {
		t.Error("expected toggle to save the selected recipe")
	}

	body = env.do(t, http.MethodGet, "/?favs=1", nil).Body.String()
	if !strings.Contains(body, "Your favorites") || !strings.Contains(body, "(ID: 11007)") {
		t.Error("expected favorites list")
	}

	env.api.failRandom.Store(true)
	body = env.do(t, http.MethodPost, "/ui/random", nil).Body.String()
	if !strings.Contains(body, "Random fetch failed.") {
		t.Error("expected random failure notice")
	}
}

func TestPageFavoritesEmpty(t *testing.T) {
	env := newTestEnv(t)

	body := env.do(t, http.MethodGet, "/?favs=1", nil).Body.String()
	if !strings.Contains(body, "No favorites yet.") {
		t.Error("expected empty favorites message")
	}
}

func TestPageAddFavoriteFromCard(t *testing.T) {
	env := newTestEnv(t)

	form := url.Values{"action": {"add"}, "title": {"Gin Fizz"}}.Encode()
	body := env.doForm(t, "/ui/favorites/11410", strings.NewReader(form)).Body.String()
	if !strings.Contains(body, "Saved to favorites!") {
		t.Error("expected saved notice")
	}

	body = env.doForm(t, "/ui/favorites/11410", strings.NewReader(form)).Body.String()
	if !strings.Contains(body, "Already in favorites.") {
		t.Error("expected already-saved notice")
	}
}
