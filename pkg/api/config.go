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
	"os"
	"strconv"
	"time"

	"github.com/NVIDIA/cocktail-explorer/pkg/cocktail"
	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
	"github.com/NVIDIA/cocktail-explorer/pkg/favorites"
)

// Environment variables read by NewConfig.
const (
	EnvAPIBase           = "COCKTAIL_API_BASE"
	EnvFavoritesFile     = "COCKTAIL_FAVORITES_FILE"
	EnvFavoritesDSN      = "COCKTAIL_FAVORITES_DSN"
	EnvLookupConcurrency = "COCKTAIL_LOOKUP_CONCURRENCY"
	EnvCacheErrors       = "COCKTAIL_CACHE_ERRORS"
	EnvSecureCookie      = "COCKTAIL_SECURE_COOKIE"
	EnvLogLevel          = "LOG_LEVEL"
)

// Config configures the explorer service.
type Config struct {
	// APIBase is the recipe API base URL.
	APIBase string

	// FavoritesFile is the favorites JSON file. Ignored when FavoritesDSN is set.
	FavoritesFile string
	// FavoritesDSN selects the postgres favorites repository.
	FavoritesDSN string

	// LookupConcurrency bounds parallel lookups during ingredient search.
	// Values below 2 keep lookups sequential.
	LookupConcurrency int

	CacheTTL       time.Duration
	CacheErrors    bool
	SessionIdleTTL time.Duration
	SecureCookie   bool

	LogLevel string
}

// NewConfig returns defaults overridden by the environment.
func NewConfig() Config {
	cfg := Config{
		APIBase:        cocktail.DefaultBaseURL,
		FavoritesFile:  favorites.DefaultFile,
		CacheTTL:       defaults.CacheTTL,
		SessionIdleTTL: defaults.SessionIdleTTL,
		LogLevel:       "info",
	}

	if v := os.Getenv(EnvAPIBase); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv(EnvFavoritesFile); v != "" {
		cfg.FavoritesFile = v
	}
	cfg.FavoritesDSN = os.Getenv(EnvFavoritesDSN)
	if v, err := strconv.Atoi(os.Getenv(EnvLookupConcurrency)); err == nil && v > 0 {
		cfg.LookupConcurrency = v
	}
	if v, err := strconv.ParseBool(os.Getenv(EnvCacheErrors)); err == nil {
		cfg.CacheErrors = v
	}
	if v, err := strconv.ParseBool(os.Getenv(EnvSecureCookie)); err == nil {
		cfg.SecureCookie = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}
