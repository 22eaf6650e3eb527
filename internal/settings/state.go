package settings

import (
	"github.com/cristianoliveira/dexview/internal/app"
	"github.com/cristianoliveira/dexview/internal/domain"
)

// FromBrowser captures the filter of b.
func FromBrowser(b *app.Browser) *Settings {
	f := b.Filter()
	s := &Settings{Query: f.Query, Type: f.SelectedType, FavoritesOnly: f.FavoritesOnly}
	if s.Type == "" {
		s.Type = domain.AllTypes
	}
	return s
}

// Apply restores s into b. The page is left at 1.
func (s *Settings) Apply(b *app.Browser) {
	if s == nil {
		return
	}
	b.SetQuery(s.Query)
	b.SetType(s.Type)
	b.SetFavoritesOnly(s.FavoritesOnly)
}

// IsEmpty reports whether s carries no filter.
func (s *Settings) IsEmpty() bool {
	return s == nil || (s.Query == "" && (s.Type == "" || s.Type == domain.AllTypes) && !s.FavoritesOnly)
}
