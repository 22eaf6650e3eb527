package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

const (
	valueFileExt = ".json"
	lockDirName  = "lock"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FileStorage keeps one file per key inside a directory. Writes go to a temp
// file that is renamed into place while the directory lock is held.
type FileStorage struct {
	dir string
}

var _ Store = (*FileStorage)(nil)

// NewFileStorage creates a FileStorage rooted at the configured state directory.
func NewFileStorage() (*FileStorage, error) {
	return NewFileStorageAt(GetStateDir())
}

// NewFileStorageAt creates a FileStorage rooted at dir.
func NewFileStorageAt(dir string) (*FileStorage, error) {
	if err := ensureStateDir(dir); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

// Dir returns the root directory.
func (fs *FileStorage) Dir() string {
	return fs.dir
}

func (fs *FileStorage) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(fs.dir, key+valueFileExt), nil
}

func (fs *FileStorage) lockDir() string {
	return filepath.Join(fs.dir, lockDirName)
}

// Get returns the stored value or ErrKeyNotFound.
func (fs *FileStorage) Get(key string) ([]byte, error) {
	path, err := fs.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Set writes value atomically.
func (fs *FileStorage) Set(key string, value []byte) error {
	path, err := fs.path(key)
	if err != nil {
		return err
	}
	return WithLock(fs.lockDir(), func() error {
		tmp, err := os.CreateTemp(fs.dir, key+".*.tmp")
		if err != nil {
			return fmt.Errorf("create temp file: %w", err)
		}
		tmpName := tmp.Name()
		defer os.Remove(tmpName)

		if _, err := tmp.Write(value); err != nil {
			tmp.Close()
			return fmt.Errorf("write %s: %w", key, err)
		}
		if err := tmp.Sync(); err != nil {
			tmp.Close()
			return fmt.Errorf("sync %s: %w", key, err)
		}
		if err := tmp.Close(); err != nil {
			return fmt.Errorf("close %s: %w", key, err)
		}
		if err := os.Chmod(tmpName, FileModeFile); err != nil {
			return fmt.Errorf("chmod %s: %w", key, err)
		}
		if err := os.Rename(tmpName, path); err != nil {
			return fmt.Errorf("rename %s: %w", key, err)
		}
		return nil
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (fs *FileStorage) Delete(key string) error {
	path, err := fs.path(key)
	if err != nil {
		return err
	}
	return WithLock(fs.lockDir(), func() error {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("delete %s: %w", key, err)
		}
		return nil
	})
}

// Close is a no-op for file storage.
func (fs *FileStorage) Close() error {
	return nil
}
