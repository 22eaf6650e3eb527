package state

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/format"
)

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if !m.loading && !m.overlay.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case catalogLoadedMsg:
		return m.handleCatalogLoaded(msg)
	case catalogFailedMsg:
		m.loading = false
		m.loadErr = msg.err
		colors.Debug(fmt.Sprintf("catalog load failed: %v", msg.err))
		m.refresh()
		return m, nil
	case detailLoadedMsg:
		return m.handleDetailLoaded(msg)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusHandler.Clear()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleCatalogLoaded(msg catalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.loadErr = nil
	m.applyCatalog()
	m.refresh()
	if msg.favoritesErr != nil {
		return m, m.setStatus("favorites could not be read; starting empty", errors.MessageTypeWarning)
	}
	return m, nil
}

func (m *Model) handleDetailLoaded(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.overlay.open || msg.gen != m.overlay.gen {
		// overlay closed or replaced since the request
		return m, nil
	}
	m.overlay.loading = false
	if msg.err != nil {
		m.overlay.err = msg.err
		return m, nil
	}
	d := msg.detail
	m.overlay.detail = &d
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.listKeys.ForceQuit) {
		return m, tea.Quit
	}
	switch {
	case m.searching:
		return m.handleSearchKey(msg)
	case m.overlay.open:
		return m.handleDetailKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.srchKeys.Done) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.browser.SetQuery(m.search.Value())
		m.cursor = 0
		m.refresh()
	}
	return m, cmd
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.detKeys.Close):
		m.closeDetail()
		return m, nil
	case key.Matches(msg, m.detKeys.Favorite):
		return m, m.toggleFavorite(m.overlay.item.ID)
	}
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.listKeys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Retry):
		if m.loadErr == nil || m.loading {
			return m, nil
		}
		m.loadErr = nil
		m.loading = true
		m.refresh()
		return m, tea.Batch(m.spinner.Tick, m.loadCmd())
	}

	if m.loading || m.loadErr != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.view.Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.NextPage):
		m.browser.NextPage(m.view)
		m.cursor = 0
		m.refresh()
	case key.Matches(msg, keys.PrevPage):
		m.browser.PrevPage(m.view)
		m.cursor = 0
		m.refresh()
	case key.Matches(msg, keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.NextType):
		m.cycleType(1)
	case key.Matches(msg, keys.PrevType):
		m.cycleType(-1)
	case key.Matches(msg, keys.FavOnly):
		m.browser.ToggleFavoritesOnly()
		m.cursor = 0
		m.refresh()
	case key.Matches(msg, keys.Favorite):
		if item, ok := m.selected(); ok {
			return m, m.toggleFavorite(item.ID)
		}
	case key.Matches(msg, keys.Open):
		if item, ok := m.selected(); ok {
			return m, m.openDetail(item.ID)
		}
	}
	return m, nil
}

func (m *Model) cycleType(step int) {
	n := len(m.types)
	m.typeIdx = ((m.typeIdx+step)%n + n) % n
	m.browser.SetType(m.types[m.typeIdx])
	m.cursor = 0
	m.refresh()
}

// toggleFavorite persists the toggle before returning, then recomputes the
// view so favorites-only mode drops or gains the item immediately.
func (m *Model) toggleFavorite(id int) tea.Cmd {
	added, err := m.session.ToggleFavorite(id)
	if err != nil {
		return m.setStatus(fmt.Sprintf("could not save favorite: %v", err), errors.MessageTypeError)
	}
	m.refresh()
	name := format.ItemNumber(id)
	if item, ok := m.session.Find(fmt.Sprint(id)); ok {
		name = format.DisplayName(item.Name)
	}
	if added {
		return m.setStatus(name+" added to favorites", errors.MessageTypeSuccess)
	}
	return m.setStatus(name+" removed from favorites", errors.MessageTypeInfo)
}

func (m *Model) openDetail(id int) tea.Cmd {
	item, ok := m.session.Find(fmt.Sprint(id))
	if !ok {
		return nil
	}
	m.overlay = detailOverlay{
		open:    true,
		gen:     m.overlay.gen + 1,
		item:    item,
		loading: true,
	}
	return tea.Batch(m.spinner.Tick, m.detailCmd(m.overlay.gen, id))
}

func (m *Model) closeDetail() {
	m.overlay = detailOverlay{gen: m.overlay.gen + 1}
}
