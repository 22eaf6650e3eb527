package storage

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/config"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644
)

// GetStateDir returns the state directory path.
func GetStateDir() string {
	if dir := os.Getenv("DEXVIEW_STATE_DIR"); dir != "" {
		return dir
	}
	config.Load()
	return config.Get("state_dir", "")
}

// ensureStateDir creates dir when missing.
func ensureStateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("storage initialization failed: DEXVIEW_STATE_DIR not configured")
	}
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	colors.Debug("state_dir: " + dir)
	return nil
}
