package state

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/dexview/internal/app"
	"github.com/cristianoliveira/dexview/internal/catalog"
	"github.com/cristianoliveira/dexview/internal/domain"
	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/favorites"
	"github.com/cristianoliveira/dexview/internal/pokeapi"
	"github.com/cristianoliveira/dexview/internal/storage"
)

var names = []string{"bulbasaur", "ivysaur", "venusaur", "charmander", "charmeleon", "charizard", "squirtle", "wartortle", "blastoise"}

// mockClient serves n creatures named after the first-generation starters.
// Creatures 4-6 are fire type.
func mockClient(n int) *pokeapi.MockClient {
	client := new(pokeapi.MockClient)
	entries := make([]pokeapi.ListEntry, 0, n)
	for i := 1; i <= n; i++ {
		name := names[(i-1)%len(names)]
		if i > len(names) {
			name = fmt.Sprintf("%s-%d", name, i)
		}
		entries = append(entries, pokeapi.ListEntry{Name: name, URL: fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", i)})
		types := []string{"grass"}
		if i >= 4 && i <= 6 {
			types = []string{"fire"}
		}
		client.On("GetItemDetail", mock.Anything, fmt.Sprint(i)).Return(pokeapi.Detail{
			ID: i, Name: name, Types: types,
			Stats: []pokeapi.Stat{{Name: "hp", BaseStat: 45}},
		}, nil).Maybe()
	}
	client.On("ListItems", mock.Anything, n, 0).Return(entries, nil).Maybe()
	client.On("ListTypes", mock.Anything).Return([]pokeapi.TypeRef{{Name: "grass"}, {Name: "fire"}}, nil).Maybe()
	return client
}

func newSession(t *testing.T, client pokeapi.Client, n int) *app.Session {
	t.Helper()
	backend, err := storage.NewFileStorageAt(t.TempDir())
	require.NoError(t, err)
	return app.NewSession(client, catalog.NewLoader(client, catalog.WithBatchSize(n)), favorites.NewStore(backend))
}

func loadedModel(t *testing.T, n int) *Model {
	t.Helper()
	session := newSession(t, mockClient(n), n)
	require.NoError(t, session.Start(context.Background()))
	return NewModel(context.Background(), session, Options{PageSize: 20})
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestLoadFlow(t *testing.T) {
	session := newSession(t, mockClient(9), 9)
	m := NewModel(context.Background(), session, Options{PageSize: 20})
	assert.True(t, m.loading)
	assert.Equal(t, domain.EmptyLoading, m.CurrentView().Empty)
	assert.Contains(t, m.View(), "Loading catalog")

	msg := m.loadCmd()()
	m.Update(msg)
	assert.False(t, m.loading)
	assert.Equal(t, 9, m.CurrentView().TotalItems)
	assert.Equal(t, []string{"all", "grass", "fire"}, m.types)
}

func TestLoadFailureAndRetry(t *testing.T) {
	client := new(pokeapi.MockClient)
	client.On("ListItems", mock.Anything, 2, 0).Return(nil, &dexerrors.TransportError{Op: "list items", StatusCode: 503}).Once()
	client.On("ListTypes", mock.Anything).Return([]pokeapi.TypeRef{{Name: "grass"}}, nil)
	session := newSession(t, client, 2)
	m := NewModel(context.Background(), session, Options{})

	m.Update(m.loadCmd()())
	require.Error(t, m.loadErr)
	assert.Contains(t, m.View(), "r: retry")

	client.On("ListItems", mock.Anything, 2, 0).Return([]pokeapi.ListEntry{{Name: "bulbasaur", URL: "https://x/pokemon/1/"}}, nil)
	client.On("GetItemDetail", mock.Anything, "1").Return(pokeapi.Detail{ID: 1, Types: []string{"grass"}}, nil)

	press(m, "r")
	assert.True(t, m.loading)
	m.Update(m.loadCmd()())
	assert.NoError(t, m.loadErr)
	assert.Equal(t, 1, m.CurrentView().TotalItems)
}

func TestPagingAndBoundaries(t *testing.T) {
	m := loadedModel(t, 50)
	assert.Equal(t, 1, m.CurrentView().CurrentPage)

	press(m, "left")
	assert.Equal(t, 1, m.CurrentView().CurrentPage)

	press(m, "right", "right", "right")
	v := m.CurrentView()
	assert.Equal(t, 3, v.CurrentPage)
	assert.Equal(t, 41, v.Items[0].ID)
	assert.False(t, v.HasNext)
}

func TestSearchResetsPage(t *testing.T) {
	m := loadedModel(t, 50)
	press(m, "right")
	require.Equal(t, 2, m.CurrentView().CurrentPage)

	press(m, "/", "c", "h", "a", "r", "esc")
	v := m.CurrentView()
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, "char", m.browser.Filter().Query)
	for _, item := range v.Items {
		assert.Contains(t, item.Name, "char")
	}
	assert.False(t, m.searching)

	// q after leaving search quits rather than typing
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
}

func TestTypeCycling(t *testing.T) {
	m := loadedModel(t, 9)
	press(m, "t")
	assert.Equal(t, "grass", m.browser.Filter().SelectedType)
	press(m, "t")
	assert.Equal(t, "fire", m.browser.Filter().SelectedType)
	assert.Equal(t, 3, m.CurrentView().TotalItems)
	press(m, "t")
	assert.Equal(t, domain.AllTypes, m.browser.Filter().SelectedType)
	press(m, "T")
	assert.Equal(t, "fire", m.browser.Filter().SelectedType)
}

func TestRestoredTypeSelection(t *testing.T) {
	tests := []struct {
		name      string
		restored  string
		wantType  string
		wantTotal int
		nextType  string
	}{
		{name: "known type", restored: "fire", wantType: "fire", wantTotal: 3, nextType: domain.AllTypes},
		{name: "type missing from taxonomy", restored: "dragon", wantType: domain.AllTypes, wantTotal: 9, nextType: "grass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newSession(t, mockClient(9), 9)
			browser := app.NewBrowser(20, nil)
			browser.SetType(tt.restored)
			m := NewModel(context.Background(), session, Options{Browser: browser})

			m.Update(m.loadCmd()())
			assert.Equal(t, tt.wantType, m.browser.Filter().SelectedType)
			assert.Equal(t, tt.wantTotal, m.CurrentView().TotalItems)

			press(m, "t")
			assert.Equal(t, tt.nextType, m.browser.Filter().SelectedType)
		})
	}
}

func TestFavoritesOnlyAndToggle(t *testing.T) {
	m := loadedModel(t, 9)
	press(m, "f")
	assert.Equal(t, domain.EmptyNoFavorites, m.CurrentView().Empty)
	assert.Contains(t, m.View(), "No favorites yet")

	press(m, "f", "j", "space")
	assert.True(t, m.session.Favorites().Contains(2))

	press(m, "f")
	v := m.CurrentView()
	require.Len(t, v.Items, 1)
	assert.Equal(t, 2, v.Items[0].ID)

	press(m, "space")
	assert.False(t, m.session.Favorites().Contains(2))
	assert.Equal(t, domain.EmptyNoFavorites, m.CurrentView().Empty)
}

func TestDetailOverlayDiscardsStaleResults(t *testing.T) {
	m := loadedModel(t, 9)
	press(m, "j", "enter")
	require.True(t, m.overlay.open)
	firstGen := m.overlay.gen
	assert.True(t, m.overlay.loading)

	press(m, "esc")
	assert.False(t, m.overlay.open)

	// result for the closed overlay arrives late
	m.Update(detailLoadedMsg{gen: firstGen, detail: pokeapi.Detail{ID: 2}})
	assert.Nil(t, m.overlay.detail)

	press(m, "enter")
	require.True(t, m.overlay.open)
	assert.NotEqual(t, firstGen, m.overlay.gen)
	m.Update(detailLoadedMsg{gen: firstGen, detail: pokeapi.Detail{ID: 99}})
	assert.Nil(t, m.overlay.detail)

	m.Update(detailLoadedMsg{gen: m.overlay.gen, detail: pokeapi.Detail{ID: 2, Name: "ivysaur", Types: []string{"grass"}}})
	require.NotNil(t, m.overlay.detail)
	assert.False(t, m.overlay.loading)
	assert.Contains(t, m.View(), "#002 Ivysaur")
}

func TestDetailCmdUsesEnrichedRecord(t *testing.T) {
	m := loadedModel(t, 3)
	press(m, "enter")
	msg := m.detailCmd(m.overlay.gen, 1)().(detailLoadedMsg)
	require.NoError(t, msg.err)
	assert.Equal(t, 1, msg.detail.ID)
}

func TestDetailFavoriteToggle(t *testing.T) {
	m := loadedModel(t, 3)
	press(m, "enter", "space")
	assert.True(t, m.session.Favorites().Contains(1))
	msg, ok := m.statusHandler.GetLatest()
	require.True(t, ok)
	assert.Contains(t, msg.Text, "Bulbasaur added")
}

func TestStatusClears(t *testing.T) {
	m := loadedModel(t, 3)
	press(m, "space")
	_, ok := m.statusHandler.GetLatest()
	require.True(t, ok)

	m.Update(clearStatusMsg{seq: m.statusSeq - 1})
	_, ok = m.statusHandler.GetLatest()
	assert.True(t, ok, "stale clear keeps the newer message")

	m.Update(clearStatusMsg{seq: m.statusSeq})
	_, ok = m.statusHandler.GetLatest()
	assert.False(t, ok)
}

func TestTeatestBrowseFlow(t *testing.T) {
	session := newSession(t, mockClient(9), 9)
	m := NewModel(context.Background(), session, Options{PageSize: 20})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 40))
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Charizard"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("No favorites yet"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final := tm.FinalModel(t).(*Model)
	assert.True(t, final.browser.Filter().FavoritesOnly)
	assert.False(t, strings.Contains(final.View(), "Loading catalog"))
}
