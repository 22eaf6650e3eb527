// Package favorites persists the user's set of favorite catalog items.
//
// The set is stored under a single key as a JSON array of item ids, sorted
// ascending. Every toggle rewrites the whole set before returning.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/cristianoliveira/dexview/internal/colors"
	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/logging"
	"github.com/cristianoliveira/dexview/internal/storage"
)

// StorageKey is the durable key holding the favorites set.
const StorageKey = "favorites"

// Set is a read-only snapshot of favorite ids.
type Set map[int]struct{}

// Contains reports whether id is in the set.
func (s Set) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// IDs returns the members sorted ascending.
func (s Set) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Store is the mutex-guarded favorites set backed by a storage.Store.
type Store struct {
	mu      sync.RWMutex
	backend storage.Store
	ids     Set
}

// NewStore creates an empty Store. Call Load to read the durable set.
func NewStore(backend storage.Store) *Store {
	return &Store{backend: backend, ids: Set{}}
}

// Load reads the durable set. An absent key yields an empty set. Malformed
// content also yields an empty set, logs a warning and returns a
// PersistenceError so the caller can surface it; the store stays usable.
func (s *Store) Load() (Set, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = Set{}
	raw, err := s.backend.Get(StorageKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return s.snapshot(), nil
	}
	if err != nil {
		perr := &dexerrors.PersistenceError{Key: StorageKey, Op: "read", Err: err}
		s.warn(perr)
		return s.snapshot(), perr
	}

	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		perr := &dexerrors.PersistenceError{Key: StorageKey, Op: "decode", Err: err}
		s.warn(perr)
		return s.snapshot(), perr
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	logging.Debug("favorites loaded", "component", "favorites", "count", len(s.ids))
	return s.snapshot(), nil
}

func (s *Store) warn(err error) {
	colors.Warning(fmt.Sprintf("favorites unavailable, starting empty: %v", err))
	logging.Warn("favorites load failed", "component", "favorites", "error", err.Error())
}

// Toggle adds id when absent and removes it when present, then writes the full
// set back. It returns the new membership. On a write failure the in-memory
// change is rolled back.
func (s *Store) Toggle(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, present := s.ids[id]
	if present {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}

	if err := s.persist(); err != nil {
		if present {
			s.ids[id] = struct{}{}
		} else {
			delete(s.ids, id)
		}
		return present, err
	}
	return !present, nil
}

// Clear removes every favorite.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.ids
	s.ids = Set{}
	if err := s.persist(); err != nil {
		s.ids = previous
		return err
	}
	return nil
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.ids.IDs())
	if err != nil {
		return &dexerrors.PersistenceError{Key: StorageKey, Op: "encode", Err: err}
	}
	if err := s.backend.Set(StorageKey, data); err != nil {
		return &dexerrors.PersistenceError{Key: StorageKey, Op: "write", Err: err}
	}
	return nil
}

// Contains reports whether id is a favorite.
func (s *Store) Contains(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids.Contains(id)
}

// IDs returns the favorite ids sorted ascending.
func (s *Store) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids.IDs()
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Snapshot returns a copy of the current set.
func (s *Store) Snapshot() Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) snapshot() Set {
	out := make(Set, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out
}
