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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/NVIDIA/cocktail-explorer/pkg/cocktail"
	"github.com/NVIDIA/cocktail-explorer/pkg/favorites"
	"github.com/NVIDIA/cocktail-explorer/pkg/fetch"
	"github.com/NVIDIA/cocktail-explorer/pkg/session"
)

const margaritaJSON = `{
	"idDrink": "11007",
	"strDrink": "Margarita",
	"strCategory": "Ordinary Drink",
	"strAlcoholic": "Alcoholic",
	"strGlass": "Cocktail glass",
	"strIBA": "Contemporary Classics",
	"strDrinkThumb": "https://img.test/margarita.jpg",
	"strInstructions": "Rub the rim of the glass with lime.",
	"strIngredient1": "Tequila", "strMeasure1": "1 1/2 oz ",
	"strIngredient2": "Triple sec", "strMeasure2": "1/2 oz ",
	"strIngredient3": "Lime juice", "strMeasure3": null,
	"strIngredient4": null, "strMeasure4": null
}`

const ginFizzJSON = `{
	"idDrink": "11410",
	"strDrink": "Gin Fizz",
	"strCategory": "Ordinary Drink",
	"strAlcoholic": "Alcoholic",
	"strGlass": "Highball glass",
	"strInstructions": "",
	"strIngredient1": "Gin", "strMeasure1": "2 oz ",
	"strIngredient2": "Lemon", "strMeasure2": "Juice of 1/2 "
}`

// fakeAPI serves a small recipe catalog.
//
//	search.php  s=margarita -> one recipe, s=boom -> 500, anything else -> null
//	filter.php  i=gin -> stubs 11410, 500500, 11007; i=ghost -> stub 404404; else null
//	lookup.php  known ids -> recipe, 500500 -> 500, else null
//	random.php  margarita, or 503 when failRandom is set
type fakeAPI struct {
	failRandom atomic.Bool
	lookups    atomic.Int32
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	drinks := func(body string) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"drinks":`+body+`}`)
	}

	switch {
	case strings.HasSuffix(r.URL.Path, "/search.php"):
		switch q.Get("s") {
		case "margarita":
			drinks("[" + margaritaJSON + "]")
		case "boom":
			http.Error(w, "upstream down", http.StatusInternalServerError)
		default:
			drinks("null")
		}
	case strings.HasSuffix(r.URL.Path, "/filter.php"):
		switch q.Get("i") {
		case "gin":
			drinks(`[{"idDrink":"11410","strDrink":"Gin Fizz"},{"idDrink":"500500","strDrink":"Broken"},{"idDrink":"11007","strDrink":"Margarita"}]`)
		case "ghost":
			drinks(`[{"idDrink":"404404","strDrink":"Ghost"}]`)
		default:
			drinks(`"no data found"`)
		}
	case strings.HasSuffix(r.URL.Path, "/lookup.php"):
		f.lookups.Add(1)
		switch q.Get("i") {
		case "11007":
			drinks("[" + margaritaJSON + "]")
		case "11410":
			drinks("[" + ginFizzJSON + "]")
		case "500500":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			drinks("null")
		}
	case strings.HasSuffix(r.URL.Path, "/random.php"):
		if f.failRandom.Load() {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		drinks("[" + margaritaJSON + "]")
	default:
		http.NotFound(w, r)
	}
}

type testEnv struct {
	api      *fakeAPI
	explorer *Explorer
	repo     *favorites.MemoryRepository
	router   chi.Router
	cookies  []*http.Cookie
}

func newTestEnv(t *testing.T, initial ...favorites.Entry) *testEnv {
	t.Helper()

	f := &fakeAPI{}
	upstream := httptest.NewServer(f)
	t.Cleanup(upstream.Close)

	repo := favorites.NewMemoryRepository(initial...)
	sessions := session.NewManager(fetch.NewClient(),
		session.WithClientOptions(cocktail.WithBaseURL(upstream.URL)))

	env := &testEnv{
		api:      f,
		explorer: NewExplorer(sessions, favorites.NewStore(repo)),
		repo:     repo,
		router:   chi.NewRouter(),
	}
	env.explorer.Routes(env.router)
	return env
}

// do sends a request carrying the session cookie from earlier responses.
func (e *testEnv) do(t *testing.T, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range e.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if cs := w.Result().Cookies(); len(cs) > 0 {
		e.cookies = cs
	}
	return w
}

// doForm posts an urlencoded form with the session cookie.
func (e *testEnv) doForm(t *testing.T, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range e.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if cs := w.Result().Cookies(); len(cs) > 0 {
		e.cookies = cs
	}
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode response: %v; body: %s", err, w.Body.String())
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d; body: %s", want, w.Code, w.Body.String())
	}
}
