// Package state holds the bubbletea model of the dexview browser.
package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/dexview/internal/pokeapi"
)

const statusClearDuration = 5 * time.Second

// catalogLoadedMsg is sent when the session finished loading. favoritesErr is
// a non-fatal PersistenceError from reading favorites.
type catalogLoadedMsg struct {
	favoritesErr error
}

// catalogFailedMsg is sent when the catalog load failed.
type catalogFailedMsg struct {
	err error
}

// detailLoadedMsg carries a detail fetch result. gen identifies the overlay
// that requested it; results for any other overlay are discarded.
type detailLoadedMsg struct {
	gen    int
	detail pokeapi.Detail
	err    error
}

// clearStatusMsg clears the status bar if it still shows message seq.
type clearStatusMsg struct {
	seq int
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusClearDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
