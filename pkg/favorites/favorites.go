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

package favorites

import (
	"context"
	"strings"
)

// Entry is a saved recipe reference.
type Entry struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Repository persists the favorites collection as a whole.
type Repository interface {
	// Load returns the stored entries in saved order. A store that does
	// not exist yet yields an empty list and no error.
	Load(ctx context.Context) ([]Entry, error)
	// Save replaces the stored entries with list.
	Save(ctx context.Context, list []Entry) error
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

// dedupe drops entries with a blank id and keeps the first entry for each id.
func dedupe(list []Entry) []Entry {
	seen := make(map[string]struct{}, len(list))
	out := make([]Entry, 0, len(list))
	for _, e := range list {
		e.ID = normalizeID(e.ID)
		if e.ID == "" {
			continue
		}
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}

func clone(list []Entry) []Entry {
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}
