package planner

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"travel-planner/internal/model"
)

// Session holds one user's planner state: the current itinerary, the
// actual-cost overrides keyed by structural position, and the gating flags
// (busy, key selected). All access goes through the mutex; the parser and
// aggregator themselves are pure and need no locking.
type Session struct {
	ID string

	mu           sync.Mutex
	busy         bool
	keySelected  bool
	itinerary    *model.Itinerary
	actualCosts  model.ActualCosts
	totalBudget  *float64
	durationDays int
}

// KeySelected reports whether an API key has been selected for this session.
func (s *Session) KeySelected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keySelected
}

// SelectKey marks the session's API key as selected.
func (s *Session) SelectKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keySelected = true
}

// ResetKey clears the key-selected flag after a credential failure.
func (s *Session) ResetKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keySelected = false
}

// BeginGeneration sets the busy flag. It returns false when a generation is
// already outstanding: overlapping submissions are rejected, not queued.
func (s *Session) BeginGeneration() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

// EndGeneration clears the busy flag once the request settles.
func (s *Session) EndGeneration() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

// ReplaceItinerary installs a new itinerary and discards all overrides in the
// same critical section. Overrides are keyed by (day, index), so carrying them
// across itineraries would misattribute costs to unrelated activities.
func (s *Session) ReplaceItinerary(it *model.Itinerary, totalBudget *float64, durationDays int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itinerary = it
	s.actualCosts = make(model.ActualCosts)
	s.totalBudget = totalBudget
	s.durationDays = durationDays
}

// SetActualCost records or clears (cost == nil) an override.
// It returns false when no itinerary exists yet.
func (s *Session) SetActualCost(day, index int, cost *float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.itinerary == nil {
		return false
	}
	if cost != nil {
		s.actualCosts.Set(day, index, *cost)
	} else {
		s.actualCosts.Delete(day, index)
	}
	return true
}

// Snapshot returns the aggregation inputs as a consistent copy.
func (s *Session) Snapshot() (*model.Itinerary, model.ActualCosts, *float64, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itinerary, s.actualCosts.Clone(), s.totalBudget, s.durationDays
}

// SessionStore keeps live sessions in an expirable LRU cache, so abandoned
// sessions age out without a background reaper of our own.
type SessionStore struct {
	cache *expirable.LRU[string, *Session]
}

const maxSessions = 1000

// NewSessionStore creates a session store with the given idle TTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		cache: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// Create registers a new session. keySelected seeds the gating flag: true
// when the server already holds a configured API key.
func (st *SessionStore) Create(keySelected bool) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		keySelected: keySelected,
		actualCosts: make(model.ActualCosts),
	}
	st.cache.Add(s.ID, s)
	return s
}

// Get returns the session for id, or ErrSessionNotFound.
func (st *SessionStore) Get(id string) (*Session, error) {
	s, ok := st.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
