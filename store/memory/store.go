// Package memory provides an in-memory Store implementation for unit testing
// and single-process deployments.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hookproof/hookproof"
	hookstore "github.com/hookproof/hookproof/store"
)

// compile-time interface check.
var _ hookstore.Store = (*Store)(nil)

// Store is an in-memory replay guard.
type Store struct {
	mu     sync.Mutex
	seen   map[string]time.Time // key -> expiry
	closed bool

	now func() time.Time
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		seen: make(map[string]time.Time),
		now:  time.Now,
	}
}

// MarkSeen records key for the window and reports whether it was already live.
func (s *Store) MarkSeen(_ context.Context, key string, window time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, hookproof.ErrStoreClosed
	}

	now := s.now()
	s.sweep(now)

	if expiry, ok := s.seen[key]; ok && expiry.After(now) {
		return true, nil
	}
	s.seen[key] = now.Add(window)
	return false, nil
}

// sweep drops expired entries. Caller holds the lock.
func (s *Store) sweep(now time.Time) {
	for key, expiry := range s.seen {
		if !expiry.After(now) {
			delete(s.seen, key)
		}
	}
}

// Ping reports whether the store is usable.
func (s *Store) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return hookproof.ErrStoreClosed
	}
	return nil
}

// Close marks the store as closed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
