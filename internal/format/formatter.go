// Package format provides output formatting functionality for CLI commands.
// It renders catalog pages and detail records in the supported output styles.
package format

import (
	"io"

	"github.com/cristianoliveira/dexview/internal/domain"
)

// Formatter defines the interface for page formatters.
type Formatter interface {
	// FormatView writes one page of the filtered catalog.
	FormatView(view domain.View, favorites domain.Favorites, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple displays one line per item with id, name and types.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable displays items in a table format with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON displays the whole view as JSON.
	FormatterTypeJSON FormatterType = "json"
)

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		// Default to simple formatter for unknown types
		return NewSimpleFormatter()
	}
}

// IsValidFormat reports whether name selects a page formatter.
func IsValidFormat(name string) bool {
	switch FormatterType(name) {
	case FormatterTypeSimple, FormatterTypeTable, FormatterTypeJSON:
		return true
	default:
		return false
	}
}

func favoritesOrEmpty(favorites domain.Favorites) domain.Favorites {
	if favorites == nil {
		return domain.NoFavorites
	}
	return favorites
}
