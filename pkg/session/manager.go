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
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/cocktail-explorer/pkg/cache"
	"github.com/NVIDIA/cocktail-explorer/pkg/cocktail"
	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
	"github.com/NVIDIA/cocktail-explorer/pkg/fetch"
)

// CookieName is the cookie carrying the session id.
const CookieName = "cocktail_session"

// Option defines a configuration option for Manager.
type Option func(*Manager)

// WithIdleTTL sets how long an unused session is kept.
func WithIdleTTL(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.idleTTL = d
		}
	}
}

// WithClock replaces time.Now for idle tracking.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithCacheOptions passes options to every session cache.
func WithCacheOptions(opts ...cache.Option) Option {
	return func(m *Manager) {
		m.cacheOpts = append(m.cacheOpts, opts...)
	}
}

// WithClientOptions passes options to every session client.
func WithClientOptions(opts ...cocktail.Option) Option {
	return func(m *Manager) {
		m.clientOpts = append(m.clientOpts, opts...)
	}
}

// WithSecureCookie marks the session cookie Secure.
func WithSecureCookie(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

// Manager creates and tracks sessions. All sessions share one upstream
// fetcher; each gets its own cache over it.
type Manager struct {
	upstream   fetch.Fetcher
	idleTTL    time.Duration
	now        func() time.Time
	cacheOpts  []cache.Option
	clientOpts []cocktail.Option
	secure     bool

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns a Manager whose sessions read through upstream.
func NewManager(upstream fetch.Fetcher, opts ...Option) *Manager {
	m := &Manager{
		upstream: upstream,
		idleTTL:  defaults.SessionIdleTTL,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// New creates and registers a session.
func (m *Manager) New() *Session {
	c := cache.New(m.upstream, append([]cache.Option{cache.WithName("session")}, m.cacheOpts...)...)
	clientOpts := append([]cocktail.Option{cocktail.WithUncachedFetcher(m.upstream)}, m.clientOpts...)

	s := &Session{
		ID:       uuid.NewString(),
		cache:    c,
		client:   cocktail.NewClient(c, clientOpts...),
		lastSeen: m.now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	n := len(m.sessions)
	m.mu.Unlock()

	activeSessions.Set(float64(n))
	slog.Debug("session created", "session", s.ID)
	return s
}

// Get returns the live session with id and marks it used.
func (m *Manager) Get(id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, false
	}

	now := m.now()
	if now.Sub(s.idleSince()) >= m.idleTTL {
		m.End(id)
		return nil, false
	}
	s.touch(now)
	return s, true
}

// End drops the session with id and its state.
func (m *Manager) End(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()

	if ok {
		s.Clear()
		s.cache.Clear()
		activeSessions.Set(float64(n))
	}
}

// FromRequest returns the session named by the request cookie, starting a
// new one and setting the cookie when there is none or it has expired.
func (m *Manager) FromRequest(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(CookieName); err == nil {
		if s, ok := m.Get(c.Value); ok {
			return s
		}
	}

	s := m.New()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}

// Len returns the number of tracked sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Reap ends sessions idle longer than the idle TTL and purges expired
// entries from the remaining caches. It returns the number of sessions
// ended.
func (m *Manager) Reap() int {
	now := m.now()

	m.mu.Lock()
	var idle []string
	live := make([]*Session, 0, len(m.sessions))
	for id, s := range m.sessions {
		if now.Sub(s.idleSince()) >= m.idleTTL {
			idle = append(idle, id)
			continue
		}
		live = append(live, s)
	}
	m.mu.Unlock()

	for _, id := range idle {
		m.End(id)
	}
	for _, s := range live {
		s.cache.Purge()
	}

	if len(idle) > 0 {
		slog.Debug("reaped idle sessions", "count", len(idle))
	}
	return len(idle)
}

// Run reaps idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = defaults.SessionReapInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Reap()
		}
	}
}
