// Package storage provides the durable key/value store used for user state.
package storage

import "github.com/cristianoliveira/dexview/internal/storage/sqlite"

// ErrKeyNotFound is returned by Get when the key has never been written.
// Every backend returns this same value.
var ErrKeyNotFound = sqlite.ErrKeyNotFound

// Store defines a small synchronous key/value store. Values are opaque bytes;
// callers own the encoding. A successful Set is durable before it returns.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
