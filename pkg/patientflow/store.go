package patientflow

import "sync"

// Store holds the current request view list. Full fetches carry a generation
// so that overlapping results resolve last-write-wins: a stale fetch never
// overwrites a newer one. Optimistic patches (Remove) sit on top of whatever
// is current and are superseded by the next applied full fetch.
type Store struct {
	mu      sync.RWMutex
	views   []RequestView
	started uint64
	applied uint64
}

func NewStore() *Store {
	return &Store{}
}

// BeginFetch hands out the generation for a fetch about to start.
func (s *Store) BeginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started++
	return s.started
}

// ApplyFetch installs a full fetch result. A result older than the last
// applied one is dropped.
func (s *Store) ApplyFetch(generation uint64, views []RequestView) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation <= s.applied {
		return false
	}
	s.applied = generation
	s.views = views
	return true
}

// Remove drops a request from the local view immediately, without waiting
// for the next poll tick.
func (s *Store) Remove(requestID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.views[:0]
	for _, view := range s.views {
		if view.ID != requestID {
			filtered = append(filtered, view)
		}
	}
	s.views = filtered
}

// Snapshot returns a copy of the current view list.
func (s *Store) Snapshot() []RequestView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	views := make([]RequestView, len(s.views))
	copy(views, s.views)
	return views
}
