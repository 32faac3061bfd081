package session

import (
	"context"
	"sync"
	"time"

	"insurance_leads_backend/platform/apperr"
	"insurance_leads_backend/platform/logger"
)

const msgSessionNotFound = "session not found"

type memoryEntry struct {
	mu        sync.Mutex
	session   Session
	expiresAt time.Time
}

// MemoryStore is an in-process Store with TTL expiry and a hard capacity.
// A janitor goroutine sweeps expired entries; reads also treat expired
// entries as absent so correctness does not depend on sweep timing.
type MemoryStore struct {
	mu       sync.Mutex
	entries  map[string]*memoryEntry
	ttl      time.Duration
	capacity int
	log      *logger.Logger

	now func() time.Time
}

// NewMemoryStore creates a memory-backed session registry.
func NewMemoryStore(ttl time.Duration, capacity int, log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		entries:  make(map[string]*memoryEntry),
		ttl:      ttl,
		capacity: capacity,
		log:      log,
		now:      time.Now,
	}
}

// Put creates or replaces a session. When the registry is full and the id is
// new, expired entries are purged first; if it is still full the call fails
// so a flood of sessions cannot exhaust memory.
func (s *MemoryStore) Put(_ context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if _, exists := s.entries[sess.ID]; !exists && len(s.entries) >= s.capacity {
		s.purgeExpiredLocked(now)
		if len(s.entries) >= s.capacity {
			return apperr.Unavailable("session capacity reached")
		}
	}

	s.entries[sess.ID] = &memoryEntry{
		session:   copySession(sess),
		expiresAt: now.Add(s.ttl),
	}
	return nil
}

// Get returns a copy of the session.
func (s *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return copySession(entry.session), nil
}

// Update applies fn under the per-session lock and refreshes the TTL on
// success. Concurrent updates to the same session are serialized; updates to
// different sessions proceed in parallel.
func (s *MemoryStore) Update(_ context.Context, id string, fn func(*Session) error) error {
	entry, err := s.lookup(id)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	working := copySession(entry.session)
	if err := fn(&working); err != nil {
		return err
	}
	working.UpdatedAt = s.now()
	entry.session = working
	entry.expiresAt = s.now().Add(s.ttl)
	return nil
}

// Delete removes a session.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// RunJanitor sweeps expired sessions until ctx is cancelled.
func (s *MemoryStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			removed := s.purgeExpiredLocked(s.now())
			s.mu.Unlock()
			if removed > 0 {
				s.log.Info("expired chat sessions removed", "count", removed)
			}
		}
	}
}

func (s *MemoryStore) lookup(id string) (*memoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, apperr.NotFound(msgSessionNotFound)
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, id)
		return nil, apperr.NotFound(msgSessionNotFound)
	}
	return entry, nil
}

func (s *MemoryStore) purgeExpiredLocked(now time.Time) int {
	removed := 0
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// copySession detaches the history slice and context map so callers can
// mutate their copy without racing the registry.
func copySession(sess Session) Session {
	clone := sess
	if sess.Context != nil {
		clone.Context = make(map[string]interface{}, len(sess.Context))
		for k, v := range sess.Context {
			clone.Context[k] = v
		}
	}
	if sess.History != nil {
		clone.History = make([]Turn, len(sess.History))
		copy(clone.History, sess.History)
	}
	return clone
}
