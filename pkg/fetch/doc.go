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

// Package fetch issues GET requests against the recipe API.
//
// A Client performs exactly one request per Fetch call with a fixed
// total timeout (12 seconds by default). It never retries. Every failure,
// whether transport error, timeout, non-2xx status, or a body that is not
// JSON, comes back as an *errors.StructuredError whose Message is safe to
// show to a user:
//
//	c := fetch.NewClient()
//	body, err := c.Fetch(ctx, "https://www.thecocktaildb.com/api/json/v1/1/search.php",
//	    url.Values{"s": {"margarita"}})
//	if err != nil {
//	    fmt.Println(errors.Message(err))
//	}
//
// Fetcher is the seam the cache wraps.
package fetch
