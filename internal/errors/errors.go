// Package errors provides the error taxonomy for dexview and the handlers that
// present messages to the user on the CLI or inside the TUI.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors usable with errors.Is.
var (
	// ErrTransport matches any *TransportError.
	ErrTransport = errors.New("transport error")
	// ErrCatalogLoad matches any *CatalogLoadError.
	ErrCatalogLoad = errors.New("catalog load error")
	// ErrPersistence matches any *PersistenceError.
	ErrPersistence = errors.New("persistence error")
	// ErrNotFound indicates that a catalog item does not exist.
	ErrNotFound = errors.New("not found")
)

// TransportError represents a failed remote call: a network failure or a
// non-success HTTP status.
type TransportError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Op, e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: request failed", e.Op, e.URL)
}

// Unwrap implements errors.Unwrap
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TransportError) Is(target error) bool {
	if target == ErrTransport {
		return true
	}
	return e.StatusCode == 404 && target == ErrNotFound
}

// CatalogLoadError is returned when the catalog cannot be built at all.
// Stage names the step that failed ("list" or "types").
type CatalogLoadError struct {
	Stage string
	Err   error
}

// Error implements the error interface
func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("load catalog (%s): %v", e.Stage, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CatalogLoadError) Is(target error) bool {
	return target == ErrCatalogLoad
}

// PersistenceError represents malformed or unwritable durable data.
type PersistenceError struct {
	Key string
	Op  string
	Err error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// NotFoundError represents a lookup of an item that is not in the catalog.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Is, As, Join and New re-export the standard library helpers so callers that
// import this package do not also need the stdlib errors package.
var (
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
	New  = errors.New
)
