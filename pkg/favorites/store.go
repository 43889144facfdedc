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
	"log/slog"
	"slices"
	"sync"

	cerrors "github.com/NVIDIA/cocktail-explorer/pkg/errors"
)

// StoreOption defines a configuration option for Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for swallowed load failures.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Store applies favorites operations on top of a Repository. Each
// mutation loads the collection, changes it, and saves it back while
// holding a lock, so calls from one process never interleave.
type Store struct {
	repo   Repository
	logger *slog.Logger
	mu     sync.Mutex
}

// NewStore returns a Store over repo.
func NewStore(repo Repository, opts ...StoreOption) *Store {
	s := &Store{
		repo:   repo,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the saved entries. A store that is missing or cannot be
// read yields an empty list; the failure is logged.
func (s *Store) Load(ctx context.Context) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) []Entry {
	list, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("favorites could not be loaded, starting empty", "error", err)
		loadFailures.Inc()
		return []Entry{}
	}
	if list == nil {
		return []Entry{}
	}
	return list
}

// Save replaces the whole collection with list. Entries with a blank id
// are dropped and only the first entry per id is kept.
func (s *Store) Save(ctx context.Context, list []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, dedupe(list))
}

func (s *Store) save(ctx context.Context, list []Entry) error {
	if err := s.repo.Save(ctx, list); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInternal, "failed to save favorites", err)
	}
	return nil
}

// AddIfAbsent appends e unless an entry with the same id exists. It
// reports whether e was added.
func (s *Store) AddIfAbsent(ctx context.Context, e Entry) (bool, error) {
	e.ID = normalizeID(e.ID)
	if e.ID == "" {
		return false, cerrors.New(cerrors.ErrCodeInvalidRequest, "favorite id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load(ctx)
	if indexOf(list, e.ID) >= 0 {
		return false, nil
	}
	if err := s.save(ctx, append(list, e)); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveByID deletes every entry with id. It reports whether any was removed.
func (s *Store) RemoveByID(ctx context.Context, id string) (bool, error) {
	id = normalizeID(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	list, removed := withoutID(s.load(ctx), id)
	if !removed {
		return false, nil
	}
	if err := s.save(ctx, list); err != nil {
		return false, err
	}
	return true, nil
}

// Contains reports whether id is saved.
func (s *Store) Contains(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.load(ctx), normalizeID(id)) >= 0
}

// Toggle removes e when it is saved and adds it otherwise. It reports
// whether e is saved afterwards.
func (s *Store) Toggle(ctx context.Context, e Entry) (bool, error) {
	e.ID = normalizeID(e.ID)
	if e.ID == "" {
		return false, cerrors.New(cerrors.ErrCodeInvalidRequest, "favorite id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, removed := withoutID(s.load(ctx), e.ID)
	if removed {
		return false, s.save(ctx, list)
	}
	if err := s.save(ctx, append(list, e)); err != nil {
		return false, err
	}
	return true, nil
}

func indexOf(list []Entry, id string) int {
	return slices.IndexFunc(list, func(e Entry) bool { return e.ID == id })
}

// withoutID filters out all entries with id. Hand-edited files may carry
// duplicates.
func withoutID(list []Entry, id string) ([]Entry, bool) {
	n := len(list)
	list = slices.DeleteFunc(list, func(e Entry) bool { return e.ID == id })
	return list, len(list) != n
}
