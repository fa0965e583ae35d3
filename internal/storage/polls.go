package storage

import (
	"sync"
	"time"

	"github.com/workglows/quizdude/internal/domain/entities"
)

// PollStore provides in-memory storage for pending polls keyed by poll ID.
// An entry stays resolvable until it expires, so several users in a group chat
// can answer the same poll. Entries do not survive a restart; the durable
// quiz_polls rows do.
type PollStore struct {
	mu    sync.RWMutex
	polls map[string]entities.PendingPoll
	ttl   time.Duration
	now   func() time.Time
}

// NewPollStore creates a PollStore whose entries expire after ttl.
func NewPollStore(ttl time.Duration) *PollStore {
	return &PollStore{
		polls: make(map[string]entities.PendingPoll),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put saves a pending poll, overwriting any previous entry with the same ID.
func (s *PollStore) Put(poll entities.PendingPoll) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls[poll.PollID] = poll
}

// Get retrieves a pending poll. Expired entries are treated as absent.
func (s *PollStore) Get(pollID string) (entities.PendingPoll, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	poll, ok := s.polls[pollID]
	if !ok || poll.Expired(s.ttl, s.now()) {
		return entities.PendingPoll{}, false
	}
	return poll, true
}

// Len returns the number of stored entries, expired ones included.
func (s *PollStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.polls)
}

// Sweep drops expired entries and returns how many were removed.
func (s *PollStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, poll := range s.polls {
		if poll.Expired(s.ttl, now) {
			delete(s.polls, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on every tick until stop is closed.
func (s *PollStore) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}
