// Package store holds the single authoritative in-process representation of
// all user data. Views issue command-style mutations and subscribe to change
// notifications; every mutation is followed by a best-effort write of the
// whole state to durable storage.
package store

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/ShivamParikh1/HabitAppV11/internal/logger"
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
	"github.com/ShivamParikh1/HabitAppV11/internal/storage"
)

// Store owns the application state. All mutation flows through its command
// methods; callers must treat snapshots returned by State as read-only.
//
// The store is single-threaded by contract: commands run to completion before
// the next is accepted, so no locking is required.
type Store struct {
	state     State
	persister storage.Persister

	subscribers map[int]func()
	nextSubID   int
}

// New builds a store for user, restoring persisted state from p when present.
// A missing slot starts from the default dataset; an unreadable or
// unparseable one falls back to the defaults and logs the problem, never
// surfacing it.
func New(user models.User, p storage.Persister) *Store {
	s := &Store{
		state:       DefaultState(user),
		persister:   p,
		subscribers: make(map[int]func()),
	}

	data, err := p.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to load saved state, starting from defaults", "error", err)
		}
		return s
	}

	if err := s.state.merge(data); err != nil {
		logger.Warn("Failed to parse saved state, starting from defaults", "error", err)
		s.state = DefaultState(user)
	}

	return s
}

// State returns a snapshot of the current state. The snapshot shares
// underlying collection storage with the store; callers must not mutate it.
func (s *Store) State() State {
	return s.state
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		delete(s.subscribers, id)
	}
}

// Flush forces a notification and durability sync without mutating state.
func (s *Store) Flush() {
	s.sync()
}

// Reset discards all state in favor of the default dataset for the current
// user and persists it.
func (s *Store) Reset() {
	s.state = DefaultState(s.state.User)
	s.sync()
}

// sync runs after every mutation: notify subscribers, then replace the
// durable slot with the full serialized state. Persistence failures are
// logged and swallowed.
func (s *Store) sync() {
	for _, fn := range s.subscribers {
		fn()
	}

	data, err := json.Marshal(s.state)
	if err != nil {
		logger.Error("Failed to serialize state", "error", err)
		return
	}
	if err := s.persister.Save(data); err != nil {
		logger.Error("Failed to persist state", "error", err)
	}
}

// newID returns a collision-resistant opaque identifier.
func newID() string {
	return uuid.NewString()
}
