package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/config"
	"github.com/cristianoliveira/dexview/internal/storage/sqlite"
)

const (
	// BackendFile selects one JSON file per key.
	BackendFile = "file"
	// BackendSQLite selects a SQLite key/value table.
	BackendSQLite = "sqlite"

	stateDBFileName = "state.db"
)

var _ Store = (*sqlite.SQLiteStorage)(nil)

// NewFromConfig creates a store based on configuration.
func NewFromConfig() (Store, error) {
	config.Load()
	backend := config.Get("storage_backend", BackendFile)
	return NewForBackend(backend)
}

// NewForBackend creates a store for the provided backend name, rooted at the
// configured state directory.
func NewForBackend(backend string) (Store, error) {
	return NewForBackendAt(backend, GetStateDir())
}

// NewForBackendAt creates a store for backend rooted at stateDir. Unknown
// backends and SQLite initialization failures fall back to file storage.
func NewForBackendAt(backend, stateDir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFileStorageAt(stateDir)
	case BackendSQLite:
		if err := ensureStateDir(stateDir); err != nil {
			return nil, err
		}
		sqliteStorage, err := sqlite.NewSQLiteStorage(filepath.Join(stateDir, stateDBFileName))
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to file: %v", err))
			return NewFileStorageAt(stateDir)
		}
		return sqliteStorage, nil
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to file", backend))
		return NewFileStorageAt(stateDir)
	}
}
