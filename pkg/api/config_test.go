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
	"testing"
	"time"

	"github.com/NVIDIA/cocktail-explorer/pkg/cocktail"
	"github.com/NVIDIA/cocktail-explorer/pkg/favorites"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{EnvAPIBase, EnvFavoritesFile, EnvFavoritesDSN,
			EnvLookupConcurrency, EnvCacheErrors, EnvSecureCookie, EnvLogLevel} {
			t.Setenv(k, "")
		}

		cfg := NewConfig()
		if cfg.APIBase != cocktail.DefaultBaseURL {
			t.Errorf("APIBase = %q", cfg.APIBase)
		}
		if cfg.FavoritesFile != favorites.DefaultFile || cfg.FavoritesDSN != "" {
			t.Errorf("unexpected favorites config %q %q", cfg.FavoritesFile, cfg.FavoritesDSN)
		}
		if cfg.CacheTTL != time.Hour {
			t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
		}
		if cfg.CacheErrors || cfg.SecureCookie || cfg.LookupConcurrency != 0 {
			t.Errorf("unexpected toggles %+v", cfg)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %q", cfg.LogLevel)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv(EnvAPIBase, "http://localhost:9999/api")
		t.Setenv(EnvFavoritesFile, "/tmp/favs.json")
		t.Setenv(EnvFavoritesDSN, "postgres://localhost/favs")
		t.Setenv(EnvLookupConcurrency, "4")
		t.Setenv(EnvCacheErrors, "true")
		t.Setenv(EnvSecureCookie, "1")
		t.Setenv(EnvLogLevel, "debug")

		cfg := NewConfig()
		if cfg.APIBase != "http://localhost:9999/api" || cfg.FavoritesFile != "/tmp/favs.json" ||
			cfg.FavoritesDSN != "postgres://localhost/favs" {
			t.Errorf("unexpected config %+v", cfg)
		}
		if cfg.LookupConcurrency != 4 || !cfg.CacheErrors || !cfg.SecureCookie || cfg.LogLevel != "debug" {
			t.Errorf("unexpected config %+v", cfg)
		}
	})

	t.Run("invalid values ignored", func(t *testing.T) {
		t.Setenv(EnvLookupConcurrency, "-2")
		t.Setenv(EnvCacheErrors, "maybe")

		cfg := NewConfig()
		if cfg.LookupConcurrency != 0 || cfg.CacheErrors {
			t.Errorf("unexpected config %+v", cfg)
		}
	})
}
