// Package domain provides the pure catalog derivations: filtering by query,
// type and favorites, and pagination of the filtered sequence into a View.
package domain

import (
	"slices"

	"github.com/cristianoliveira/dexview/internal/search"
)

// AllTypes is the type selector value that disables type filtering.
const AllTypes = "all"

// Item is one enriched catalog entry.
type Item struct {
	// ID is the remote service's identifier and the canonical identity.
	ID int `json:"id"`
	// Position is the 1-based index within the loaded batch.
	Position int      `json:"position"`
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	// Image is empty when enrichment failed or no artwork exists.
	Image string `json:"image,omitempty"`
}

var _ search.Document = Item{}

// FieldValues implements search.Document.
func (i Item) FieldValues(field string) []string {
	switch field {
	case search.FieldName:
		return []string{i.Name}
	case search.FieldType:
		return i.Types
	default:
		return nil
	}
}

// HasType reports whether typeName is one of the item's types, exactly.
func (i Item) HasType(typeName string) bool {
	return slices.Contains(i.Types, typeName)
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	i.Types = slices.Clone(i.Types)
	if i.Types == nil {
		i.Types = []string{}
	}
	return i
}

// Favorites is the read side of the favorites set.
type Favorites interface {
	Contains(id int) bool
	Len() int
}

// NoFavorites is an empty Favorites.
var NoFavorites Favorites = emptyFavorites{}

type emptyFavorites struct{}

func (emptyFavorites) Contains(int) bool { return false }
func (emptyFavorites) Len() int          { return 0 }
