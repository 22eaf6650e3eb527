package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"github.com/cristianoliveira/dexview/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(render.Header(render.HeaderState{
		Favorites: m.session.Favorites().Len(),
		Loaded:    len(m.session.Items()),
	}))
	s.WriteString("\n")

	switch {
	case m.loadErr != nil:
		s.WriteString("\n")
		s.WriteString(render.LoadError(m.loadErr))
		s.WriteString("\n")
		return s.String()
	case m.overlay.open:
		s.WriteString("\n")
		s.WriteString(render.Detail(render.DetailState{
			Item:     m.overlay.item,
			Detail:   m.overlay.detail,
			Loading:  m.overlay.loading,
			Err:      m.overlay.err,
			Favorite: m.session.Favorites().Contains(m.overlay.item.ID),
			Spinner:  m.spinner.View(),
			Width:    m.width,
		}))
		s.WriteString("\n")
		s.WriteString(m.footer(m.detKeys))
		return s.String()
	}

	filter := m.browser.Filter()
	s.WriteString(render.Filters(render.FilterState{
		SearchInput:   m.search.View(),
		SelectedType:  filter.SelectedType,
		FavoritesOnly: filter.FavoritesOnly,
	}))
	s.WriteString("\n\n")

	if len(m.view.Items) == 0 {
		s.WriteString(render.Empty(m.view.Empty, m.spinner.View()))
		s.WriteString("\n")
	} else {
		favorites := m.session.Favorites()
		for i, item := range m.view.Items {
			s.WriteString(render.Row(render.RowState{
				Item:     item,
				Favorite: favorites.Contains(item.ID),
				Selected: i == m.cursor,
				Width:    m.width,
			}))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(render.Pager(m.view))
	s.WriteString("\n")
	if m.searching {
		s.WriteString(m.footer(m.srchKeys))
	} else {
		s.WriteString(m.footer(m.listKeys))
	}
	return s.String()
}

func (m *Model) footer(keys help.KeyMap) string {
	var s strings.Builder
	if msg, ok := m.statusHandler.GetLatest(); ok {
		s.WriteString(render.Status(msg))
		s.WriteString("\n")
	}
	s.WriteString(m.help.View(keys))
	return s.String()
}
