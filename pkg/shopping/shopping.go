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

// Package shopping compares the ingredients a user has with what a recipe
// needs.
package shopping

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Missing returns the needed ingredients that do not appear in haveCSV.
//
// haveCSV is split on commas; tokens are trimmed and blank ones dropped.
// Comparison is exact after trimming and lower-casing both sides. Needed
// entries keep their order and spelling. The result is never nil.
func Missing(haveCSV string, needed []string) []string {
	have := HaveSet(haveCSV)

	missing := make([]string, 0, len(needed))
	for _, n := range needed {
		if _, ok := have[normalize(n)]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

// HaveSet parses a comma-separated ingredient list into a normalized set.
func HaveSet(haveCSV string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Split(haveCSV, ",") {
		if n := normalize(tok); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

func normalize(s string) string {
	// cases.Caser is stateful, so build one per call.
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
