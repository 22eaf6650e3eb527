package settings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/dexview/internal/app"
	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/storage"
)

func newManager(t *testing.T) (*Manager, storage.Store) {
	t.Helper()
	backend, err := storage.NewFileStorageAt(t.TempDir())
	require.NoError(t, err)
	return NewManager(backend), backend
}

func TestNewManagerPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewManager(nil) })
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	m, _ := newManager(t)
	s, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.True(t, s.IsEmpty())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m, _ := newManager(t)
	want := &Settings{Query: "char", Type: "fire", FavoritesOnly: true}
	require.NoError(t, m.Save(want))

	got, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.False(t, got.IsEmpty())

	require.NoError(t, m.Reset())
	got, err = m.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
}

func TestLoadMalformedFailsOpen(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{oops"},
		{name: "invalid type", data: `{"type":"Fire Type"}`},
		{name: "query too long", data: `{"query":"` + strings.Repeat("a", MaxQueryLength+1) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, backend := newManager(t)
			require.NoError(t, backend.Set(StorageKey, []byte(tt.data)))

			s, err := m.Load()
			assert.True(t, dexerrors.Is(err, dexerrors.ErrPersistence))
			assert.Equal(t, DefaultSettings(), s)
		})
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	m, _ := newManager(t)
	assert.Error(t, m.Save(nil))
	assert.Error(t, m.Save(&Settings{Type: "../etc"}))

	s, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s, "nothing was written")
}

func TestBrowserRoundTrip(t *testing.T) {
	b := app.NewBrowser(20, nil)
	assert.True(t, FromBrowser(b).IsEmpty())
	assert.Equal(t, "all", FromBrowser(b).Type)

	b.SetQuery("saur")
	b.SetType("grass")
	b.SetFavoritesOnly(true)
	s := FromBrowser(b)
	assert.Equal(t, &Settings{Query: "saur", Type: "grass", FavoritesOnly: true}, s)

	restored := app.NewBrowser(20, nil)
	restored.SetPage(4)
	s.Apply(restored)
	assert.Equal(t, b.Filter(), restored.Filter())
	assert.Equal(t, 1, restored.Page())

	var none *Settings
	none.Apply(restored)
	assert.True(t, none.IsEmpty())
}
