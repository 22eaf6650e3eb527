// Package settings persists the browser's filter preferences between
// sessions of the interactive browser.
package settings

import (
	"encoding/json"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/cristianoliveira/dexview/internal/domain"
	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/storage"
)

// StorageKey is the key settings are stored under.
const StorageKey = "settings"

// MaxQueryLength bounds the persisted search query; it matches the search
// input's character limit.
const MaxQueryLength = 64

var typeNamePattern = regexp.MustCompile(`^[a-z0-9-]*$`)

// Settings holds the browser preferences persisted to disk.
//
// JSON Schema:
//
//	{
//	  "query": "char",
//	  "type": "fire",
//	  "favoritesOnly": false
//	}
type Settings struct {
	// Query is the last search query. Empty means no search.
	Query string `json:"query"`

	// Type is the selected type. Empty or "all" means no type filter.
	Type string `json:"type"`

	// FavoritesOnly restricts the list to favorites.
	FavoritesOnly bool `json:"favoritesOnly"`
}

// DefaultSettings returns settings with no filters.
func DefaultSettings() *Settings {
	return &Settings{Type: domain.AllTypes}
}

// Validate checks that settings values are valid.
func Validate(s *Settings) error {
	if s == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if utf8.RuneCountInString(s.Query) > MaxQueryLength {
		return fmt.Errorf("query longer than %d characters", MaxQueryLength)
	}
	if !typeNamePattern.MatchString(s.Type) {
		return fmt.Errorf("invalid type name: %q", s.Type)
	}
	return nil
}

// Manager loads and saves settings through a storage backend.
type Manager struct {
	backend storage.Store
}

// NewManager creates a Manager over backend.
func NewManager(backend storage.Store) *Manager {
	if backend == nil {
		panic("NewManager: backend dependency cannot be nil")
	}
	return &Manager{backend: backend}
}

// Load reads the stored settings. Missing settings yield the defaults.
// Malformed or invalid settings also yield the defaults, together with a
// PersistenceError the caller may report.
func (m *Manager) Load() (*Settings, error) {
	data, err := m.backend.Get(StorageKey)
	if err != nil {
		if dexerrors.Is(err, storage.ErrKeyNotFound) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), &dexerrors.PersistenceError{Key: StorageKey, Op: "read", Err: err}
	}

	s := DefaultSettings()
	if err := json.Unmarshal(data, s); err != nil {
		return DefaultSettings(), &dexerrors.PersistenceError{Key: StorageKey, Op: "decode", Err: err}
	}
	if err := Validate(s); err != nil {
		return DefaultSettings(), &dexerrors.PersistenceError{Key: StorageKey, Op: "validate", Err: err}
	}
	return s, nil
}

// Save validates and writes s.
func (m *Manager) Save(s *Settings) error {
	if err := Validate(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.backend.Set(StorageKey, data); err != nil {
		return &dexerrors.PersistenceError{Key: StorageKey, Op: "write", Err: err}
	}
	return nil
}

// Reset removes the stored settings so the next Load returns the defaults.
func (m *Manager) Reset() error {
	if err := m.backend.Delete(StorageKey); err != nil {
		return &dexerrors.PersistenceError{Key: StorageKey, Op: "delete", Err: err}
	}
	return nil
}
