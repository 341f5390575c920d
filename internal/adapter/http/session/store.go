// Package session holds per-browser-session sankey drill-down state.
// The state is deliberately process-local: it is mutable UI state with
// a single-writer contract, not durable data.
package session

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iho/ledgerlens/internal/domain"
	"github.com/iho/ledgerlens/internal/sankey"
)

// ULIDGenerator generates ULID-based session IDs.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}

type entry struct {
	mu       sync.Mutex
	state    *sankey.State
	lastSeen time.Time
}

// Store maps session IDs to their drill-down state. Each entry has
// its own mutex so the single-writer invariant holds even if a client
// misbehaves and fires concurrent requests for one session.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	idGen   interface{ Generate() string }
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a session store. Sessions idle longer than ttl are
// evicted lazily on the next store access.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*entry),
		idGen:   NewULIDGenerator(),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create registers a new session around the given state and returns
// its ID.
func (s *Store) Create(state *sankey.State) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpiredLocked()

	id := s.idGen.Generate()
	s.entries[id] = &entry{state: state, lastSeen: s.now()}
	return id
}

// With runs fn while holding the session's lock, so state reads and
// mutations within one request are serialized per session.
func (s *Store) With(id string, fn func(state *sankey.State) error) error {
	s.mu.Lock()
	s.evictExpiredLocked()
	e, ok := s.entries[id]
	if ok {
		e.lastSeen = s.now()
	}
	s.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.state)
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) evictExpiredLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}
