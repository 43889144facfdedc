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

// Package cli implements the cocktail command-line interface.
//
// # Commands
//
// serve - Start the web explorer:
//
//	cocktail serve
//
// search - Search by name, or by ingredient:
//
//	cocktail search margarita
//	cocktail search --ingredient --limit 5 gin
//
// lookup - Show a full recipe, optionally with a shopping list:
//
//	cocktail lookup 11007 --have "tequila, lime juice"
//
// random - Show a random recipe.
//
// favorites - Manage saved recipes:
//
//	cocktail favorites list
//	cocktail favorites add 11007
//	cocktail favorites remove 11007
//
// missing - Diff ingredients on hand against a recipe:
//
//	cocktail missing --have gin,tonic --needed Gin --needed "Tonic water"
//	cocktail missing --have gin --recipe 11410
//
// # Global Flags
//
//	--api-base       Recipe API base URL (env COCKTAIL_API_BASE)
//	--favorites      Favorites JSON file (env COCKTAIL_FAVORITES_FILE)
//	--favorites-dsn  Postgres DSN for favorites (env COCKTAIL_FAVORITES_DSN)
//	--log-level      Log level (env LOG_LEVEL, default warn)
//	--format, -t     Output format: table, json, yaml (default: table)
//	--output, -o     Output file path (default: stdout)
//
// Messages that accompany a table (for example "No favorites yet.") are
// written to stderr. A failed upstream call exits non-zero after printing
// whatever output there is.
package cli
