package models

import (
	"sync"
	"time"
)

// DeckSource describes where the loaded deck came from
type DeckSource struct {
	ID       string
	Name     string
	Cards    int
	LoadedAt time.Time
}

// SessionRepository holds the current session snapshot. Loads finish on a
// background goroutine, so replacement must be atomic with respect to readers.
type SessionRepository struct {
	mu      sync.RWMutex
	current Session
	source  *DeckSource
	loads   int
}

// NewSessionRepository creates a repository holding the startup session
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		current: NewSession(),
	}
}

// Current returns the current session snapshot
func (r *SessionRepository) Current() Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Update applies fn to the current snapshot and stores the result
func (r *SessionRepository) Update(fn func(Session) Session) Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = fn(r.current)
	return r.current
}

// ReplaceDeck loads cards into the current session and records their source
func (r *SessionRepository) ReplaceDeck(cards []Card, source DeckSource, rng Shuffler) Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = r.current.Load(cards, rng)
	source.Cards = len(cards)
	r.source = &source
	r.loads++
	return r.current
}

// Source returns the origin of the loaded deck, or nil before the first load
func (r *SessionRepository) Source() *DeckSource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.source == nil {
		return nil
	}
	src := *r.source
	return &src
}

// LoadCount returns how many decks have been loaded this run
func (r *SessionRepository) LoadCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loads
}
