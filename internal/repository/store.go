package repository

import (
	"sync"

	"github.com/Dias221467/waseela/internal/achievements"
	"github.com/Dias221467/waseela/internal/models"
)

// Store owns the application state. Every mutation runs as a single unit:
// read the current snapshot, compute the next one, re-evaluate achievements
// and publish.
type Store struct {
	mu      sync.RWMutex
	current Snapshot
}

// NewStore creates a store seeded with the given achievements.
func NewStore(seed []models.Achievement) *Store {
	return &Store{current: NewSnapshot(seed)}
}

// Snapshot returns the currently published snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Apply publishes mutate(current) with freshly evaluated achievements and
// returns both the previous and the published snapshot.
func (s *Store) Apply(mutate func(Snapshot) Snapshot) (prev, next Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev = s.current
	next = mutate(prev)
	next.Achievements = achievements.Evaluate(next.Goals, next.Bookmarks, prev.Achievements)
	s.current = next
	return prev, next
}
