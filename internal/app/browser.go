// Package app holds the use-cases shared by the CLI, the TUI and the local API:
// the browsing state machine, the loaded session and the command use-cases.
package app

import (
	"github.com/cristianoliveira/dexview/internal/domain"
	"github.com/cristianoliveira/dexview/internal/search"
)

// Browser holds the user's filter criteria and current page. Every filter
// change resets the page to 1. The view is recomputed on demand.
type Browser struct {
	filter   domain.Filter
	page     int
	pageSize int
	provider search.Provider
}

// NewBrowser creates a Browser on page 1 with no filters.
func NewBrowser(pageSize int, provider search.Provider) *Browser {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	if provider == nil {
		provider = search.NewSubstringProvider()
	}
	return &Browser{page: 1, pageSize: pageSize, provider: provider}
}

// Filter returns the current filter.
func (b *Browser) Filter() domain.Filter {
	return b.filter
}

// Page returns the requested page. It may exceed the view's MaxPage until the
// next View call clamps it.
func (b *Browser) Page() int {
	return b.page
}

// PageSize returns the page size.
func (b *Browser) PageSize() int {
	return b.pageSize
}

// SetQuery replaces the search query.
func (b *Browser) SetQuery(query string) {
	b.filter.Query = query
	b.page = 1
}

// SetType selects a type; "" or "all" disables type filtering.
func (b *Browser) SetType(typeName string) {
	b.filter.SelectedType = typeName
	b.page = 1
}

// SetFavoritesOnly sets the favorites-only flag.
func (b *Browser) SetFavoritesOnly(enabled bool) {
	b.filter.FavoritesOnly = enabled
	b.page = 1
}

// ToggleFavoritesOnly flips the favorites-only flag.
func (b *Browser) ToggleFavoritesOnly() {
	b.SetFavoritesOnly(!b.filter.FavoritesOnly)
}

// SetPage jumps to page; it is clamped when the view is built.
func (b *Browser) SetPage(page int) {
	b.page = page
}

// NextPage advances one page unless v is already on the last page.
func (b *Browser) NextPage(v domain.View) {
	if v.HasNext {
		b.page = v.CurrentPage + 1
	}
}

// PrevPage goes back one page unless v is already on the first page.
func (b *Browser) PrevPage(v domain.View) {
	if v.HasPrev {
		b.page = v.CurrentPage - 1
	}
}

// View derives the current page over items. The stored page is clamped so it
// never leaves [1, MaxPage].
func (b *Browser) View(items []domain.Item, favorites domain.Favorites, loading bool) domain.View {
	v := domain.BuildView(domain.ViewRequest{
		Items:     items,
		Filter:    b.filter,
		Favorites: favorites,
		Page:      b.page,
		PageSize:  b.pageSize,
		Provider:  b.provider,
		Loading:   loading,
	})
	b.page = v.CurrentPage
	return v
}
