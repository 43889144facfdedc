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

package session

import (
	"sync"
	"time"

	"github.com/NVIDIA/cocktail-explorer/pkg/cache"
	"github.com/NVIDIA/cocktail-explorer/pkg/cocktail"
	"github.com/NVIDIA/cocktail-explorer/pkg/recipe"
)

// Session is the state of one browser session: the recipe open in the
// detail view and a private result cache.
type Session struct {
	ID string

	cache  *cache.Cache
	client *cocktail.Client

	mu       sync.RWMutex
	selected *recipe.Recipe
	lastSeen time.Time
}

// Select makes r the recipe shown in the detail view, replacing any
// previous one.
func (s *Session) Select(r recipe.Recipe) {
	s.mu.Lock()
	s.selected = &r
	s.mu.Unlock()
}

// Selected returns the recipe in the detail view, if any.
func (s *Session) Selected() (recipe.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return recipe.Recipe{}, false
	}
	return *s.selected, true
}

// Clear empties the detail view.
func (s *Session) Clear() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// Client returns the recipe API client bound to this session's cache.
func (s *Session) Client() *cocktail.Client {
	return s.client
}

// Cache returns the session's result cache.
func (s *Session) Cache() *cache.Cache {
	return s.cache
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}
