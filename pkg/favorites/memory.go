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
	"sync"
)

// MemoryRepository keeps favorites in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository returns a repository seeded with initial.
func NewMemoryRepository(initial ...Entry) *MemoryRepository {
	return &MemoryRepository{entries: clone(initial)}
}

// Load implements Repository.
func (r *MemoryRepository) Load(_ context.Context) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.entries), nil
}

// Save implements Repository.
func (r *MemoryRepository) Save(_ context.Context, list []Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = clone(list)
	return nil
}
