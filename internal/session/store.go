package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taazafoods/chatbot-backend/internal/cart"
)

const idPrefix = "sess_"

// maxIDAttempts bounds the collision-check loop in Create. With random UUIDs
// a second attempt is already unreachable in practice.
const maxIDAttempts = 5

// Observer receives store occupancy updates.
type Observer interface {
	SetActiveSessions(n int)
}

// Store owns the in-memory session map. The map itself is guarded by a
// read-write mutex used only for lookup and membership changes; cart mutation
// happens under the individual session's lock, so operations on distinct
// sessions never contend.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	idleTTL  time.Duration
	grace    time.Duration
	observer Observer
}

// NewStore builds a session store with the given idle and post-checkout
// expiry windows.
func NewStore(idleTTL, grace time.Duration, observer Observer) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		grace:    grace,
		observer: observer,
	}
}

// Create allocates a fresh session with an empty cart and schedules its idle
// expiry. The idle window is fixed from creation; cart activity does not
// extend it.
func (s *Store) Create(user User) (Snapshot, error) {
	s.mu.Lock()

	var id string
	for attempt := 0; ; attempt++ {
		if attempt == maxIDAttempts {
			s.mu.Unlock()
			return Snapshot{}, fmt.Errorf("generating session id: %d collisions", attempt)
		}
		id = idPrefix + uuid.NewString()
		if _, exists := s.sessions[id]; !exists {
			break
		}
	}

	record := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		User:      user,
		Cart:      cart.Cart{},
	}
	s.sessions[id] = record
	record.timer = time.AfterFunc(s.idleTTL, func() { s.Delete(id) })
	count := len(s.sessions)
	snap := record.snapshot()
	s.mu.Unlock()

	s.notify(count)
	return snap, nil
}

// Get returns a snapshot of the session, if it exists.
func (s *Store) Get(id string) (Snapshot, bool) {
	s.mu.RLock()
	record, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Snapshot{}, false
	}
	record.mu.Lock()
	snap := record.snapshot()
	record.mu.Unlock()
	return snap, true
}

// Update runs fn against the session under its own lock and returns the
// resulting snapshot. Mutations on the same session serialize here;
// unrelated sessions proceed in parallel.
func (s *Store) Update(id string, fn func(*Session)) (Snapshot, bool) {
	s.mu.RLock()
	record, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Snapshot{}, false
	}
	record.mu.Lock()
	fn(record)
	snap := record.snapshot()
	record.mu.Unlock()
	return snap, true
}

// Delete removes the session and stops any pending expiry timer. Removing an
// unknown id is a no-op; the return reports whether anything was removed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	record, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
		if record.timer != nil {
			record.timer.Stop()
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	if ok {
		s.notify(count)
	}
	return ok
}

// ScheduleGrace replaces the session's pending expiry with the short
// post-checkout window. The old timer is stopped first, so at most one
// deletion is ever pending; a stale fire only hits the idempotent Delete.
func (s *Store) ScheduleGrace(id string) {
	s.schedule(id, s.grace)
}

func (s *Store) schedule(id string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.sessions[id]
	if !ok {
		return
	}
	if record.timer != nil {
		record.timer.Stop()
	}
	record.timer = time.AfterFunc(d, func() { s.Delete(id) })
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) notify(count int) {
	if s.observer != nil {
		s.observer.SetActiveSessions(count)
	}
}
