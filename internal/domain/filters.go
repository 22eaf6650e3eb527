package domain

import (
	"strings"

	"github.com/cristianoliveira/dexview/internal/search"
)

// Filter holds the user's filter criteria.
type Filter struct {
	Query         string
	SelectedType  string // "" or "all" disables type filtering
	FavoritesOnly bool
}

// IsEmpty returns true if the filter has no criteria set.
func (f Filter) IsEmpty() bool {
	return f.Query == "" && !f.typeActive() && !f.FavoritesOnly
}

func (f Filter) typeActive() bool {
	return f.SelectedType != "" && f.SelectedType != AllTypes
}

// FilterItems applies the query, then the type, then the favorites predicate.
// Order is preserved. A nil provider uses case-insensitive substring search on
// names. A nil favorites set is treated as empty.
func FilterItems(items []Item, filter Filter, favorites Favorites, provider search.Provider) []Item {
	if provider == nil {
		provider = search.NewSubstringProvider()
	}
	if favorites == nil {
		favorites = NoFavorites
	}

	// The query is used verbatim: whitespace is part of the substring.
	query := filter.Query
	result := make([]Item, 0, len(items))
	for _, item := range items {
		if query != "" && !provider.Match(item, query) {
			continue
		}
		if filter.typeActive() && !item.HasType(filter.SelectedType) {
			continue
		}
		if filter.FavoritesOnly && !favorites.Contains(item.ID) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// FindItem looks an item up by numeric id or by case-insensitive name.
func FindItem(items []Item, idOrName string) (Item, bool) {
	key := strings.ToLower(strings.TrimSpace(idOrName))
	for _, item := range items {
		if strings.ToLower(item.Name) == key {
			return item, true
		}
	}
	for _, item := range items {
		if itoa(item.ID) == key {
			return item, true
		}
	}
	return Item{}, false
}
