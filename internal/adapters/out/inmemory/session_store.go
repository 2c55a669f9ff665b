// Package inmemory holds process-local adapter implementations. The
// session store lives here rather than in a database: an order session
// is conversation-scratch state that dies with the conversation, and
// the completed-order ledger is the durable record.
package inmemory

import (
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

type sessionEntry struct {
	mu         sync.Mutex
	session    *order.Session
	lastActive time.Time
}

// SessionStore is a concurrency-safe in-memory session store. Mutations
// go through a per-session lock so concurrent events on the same
// conversation serialize instead of interleaving.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	now      func() time.Time
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*sessionEntry),
		now:      time.Now,
	}
}

func (s *SessionStore) entry(id string) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		e = &sessionEntry{session: order.NewSession()}
		s.sessions[id] = e
	}
	e.lastActive = s.now()
	return e
}

// GetOrCreate returns a snapshot of the session for id, creating an
// empty session first if none exists.
func (s *SessionStore) GetOrCreate(id string) order.Snapshot {
	e := s.entry(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Snapshot()
}

// Update runs fn against the session for id under its lock.
func (s *SessionStore) Update(id string, fn func(session *order.Session) error) error {
	e := s.entry(id)

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// Delete removes the session for id, if any.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// DeleteIdleBefore evicts sessions whose last activity predates the
// cutoff and returns how many were removed.
func (s *SessionStore) DeleteIdleBefore(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if e.lastActive.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
