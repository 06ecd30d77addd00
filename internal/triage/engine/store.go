package engine

import (
	"sync"

	"engagement-srv/internal/model"
)

// MaxFeedSize caps the in-memory feed. AddInteractions drops the oldest
// entries beyond this bound.
const MaxFeedSize = 300

// Store holds the authoritative in-memory interaction collection for a
// workspace session, ordered newest-first. All mutation goes through the
// defined operations; safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	items []model.Interaction
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// SetInteractions replaces the entire collection. Last write wins.
func (s *Store) SetInteractions(items []model.Interaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]model.Interaction(nil), items...)
}

// AddInteractions prepends new items (newest-first convention) and
// truncates the feed to MaxFeedSize. A re-delivered id replaces the stored
// entry instead of duplicating it.
func (s *Store) AddInteractions(items []model.Interaction) {
	if len(items) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(items))
	merged := make([]model.Interaction, 0, len(items)+len(s.items))
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		merged = append(merged, it)
	}
	for _, it := range s.items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		merged = append(merged, it)
	}
	if len(merged) > MaxFeedSize {
		merged = merged[:MaxFeedSize]
	}
	s.items = merged
}

// UpdateInteraction merges patch into the interaction with the matching id.
// No-op when the id is not present. Only the matching element changes.
func (s *Store) UpdateInteraction(id string, patch Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = patch.Apply(s.items[i])
			return true
		}
	}
	return false
}

// Put replaces the stored interaction with the same id. Used to restore a
// snapshot when an optimistic update fails to persist.
func (s *Store) Put(it model.Interaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == it.ID {
			s.items[i] = it
			return true
		}
	}
	return false
}

// Remove deletes the interactions whose ids are in ids. Returns the number removed.
func (s *Store) Remove(ids []string) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	removed := 0
	for _, it := range s.items {
		if drop[it.ID] {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	return removed
}

// Get returns the interaction with the given id.
func (s *Store) Get(id string) (model.Interaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Interaction{}, false
}

// Snapshot returns a copy of the current collection in order.
func (s *Store) Snapshot() []model.Interaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Interaction(nil), s.items...)
}

// Len returns the number of interactions held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
