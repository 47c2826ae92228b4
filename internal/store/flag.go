// Package store persists the one piece of cross-session state the store
// keeps: whether a player has dismissed the onboarding tour.
package store

import (
	"context"
	"sync"
)

// FlagStore reads the tour flag at display time and writes it on
// dismissal. Implementations must treat an unknown player as unseen.
type FlagStore interface {
	Seen(ctx context.Context, player string) (bool, error)
	MarkSeen(ctx context.Context, player string) error
	Close() error
}

// MemoryFlagStore keeps flags in process memory. Used in dev mode and
// in tests; flags do not survive a restart.
type MemoryFlagStore struct {
	mu   sync.RWMutex
	seen map[string]bool
}

func NewMemoryFlagStore() *MemoryFlagStore {
	return &MemoryFlagStore{seen: make(map[string]bool)}
}

func (s *MemoryFlagStore) Seen(_ context.Context, player string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seen[player], nil
}

func (s *MemoryFlagStore) MarkSeen(_ context.Context, player string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[player] = true
	return nil
}

func (s *MemoryFlagStore) Close() error { return nil }
