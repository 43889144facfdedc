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

// Package cocktail queries the recipe API.
//
// Client offers name search, ingredient filter, lookup by id, and random
// pick. SearchByIngredient combines a filter with one lookup per stub:
//
//	c := cocktail.NewClient(cache.New(fetch.NewClient()))
//	res, err := c.SearchByIngredient(ctx, "gin", 8)
//	switch {
//	case err != nil:
//	    // filter failed
//	case res.NoCandidates():
//	    // nothing contains gin
//	case res.Unresolved():
//	    // candidates found, no lookup succeeded
//	}
//
// Lookups run one after another unless WithLookupConcurrency is set. In
// both modes the result keeps filter order and a failed lookup only drops
// its own recipe.
package cocktail
