package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/cristianoliveira/dexview/internal/catalog"
	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/domain"
	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/favorites"
	"github.com/cristianoliveira/dexview/internal/hooks"
	"github.com/cristianoliveira/dexview/internal/pokeapi"
	"github.com/cristianoliveira/dexview/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var starterNames = []string{"bulbasaur", "ivysaur", "venusaur", "charmander", "charmeleon", "charizard", "squirtle", "wartortle", "blastoise"}

// newMockClient serves n creatures; names cycle through the starters and
// creatures 4-6 are fire type.
func newMockClient(n int) *pokeapi.MockClient {
	client := new(pokeapi.MockClient)
	entries := make([]pokeapi.ListEntry, 0, n)
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("%s-%d", starterNames[(i-1)%len(starterNames)], i)
		entries = append(entries, pokeapi.ListEntry{Name: name, URL: fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", i)})
		types := []string{"normal"}
		if i >= 4 && i <= 6 {
			types = []string{"fire"}
		}
		client.On("GetItemDetail", mock.Anything, fmt.Sprint(i)).Return(pokeapi.Detail{
			ID: i, Name: name, Types: types, Image: "img",
		}, nil).Maybe()
	}
	client.On("ListItems", mock.Anything, n, 0).Return(entries, nil).Maybe()
	client.On("ListTypes", mock.Anything).Return([]pokeapi.TypeRef{{Name: "normal"}, {Name: "fire"}}, nil).Maybe()
	return client
}

func newSession(t *testing.T, client *pokeapi.MockClient, n int) (*Session, storage.Store) {
	t.Helper()
	backend, err := storage.NewFileStorageAt(t.TempDir())
	require.NoError(t, err)
	store := favorites.NewStore(backend)
	loader := catalog.NewLoader(client, catalog.WithBatchSize(n))
	return NewSession(client, loader, store), backend
}

func TestBrowserFiftyItems(t *testing.T) {
	client := newMockClient(50)
	session, _ := newSession(t, client, 50)
	require.NoError(t, session.Start(context.Background()))

	b := NewBrowser(20, nil)
	v := session.View(b)
	assert.Equal(t, 50, v.TotalItems)
	assert.Equal(t, 3, v.MaxPage)
	assert.Equal(t, 1, v.Items[0].ID)
	assert.Equal(t, 20, v.Items[19].ID)

	b.NextPage(v)
	v = session.View(b)
	b.NextPage(v)
	v = session.View(b)
	assert.Equal(t, 3, v.CurrentPage)
	assert.Equal(t, 41, v.Items[0].ID)
	assert.Equal(t, 50, v.Items[len(v.Items)-1].ID)

	b.NextPage(v)
	v = session.View(b)
	assert.Equal(t, 3, v.CurrentPage, "next is a no-op on the last page")
}

func TestBrowserQueryResetsPage(t *testing.T) {
	client := newMockClient(50)
	session, _ := newSession(t, client, 50)
	require.NoError(t, session.Start(context.Background()))

	b := NewBrowser(20, nil)
	b.SetPage(3)
	v := session.View(b)
	require.Equal(t, 3, v.CurrentPage)

	b.SetQuery("char")
	assert.Equal(t, 1, b.Page())
	v = session.View(b)
	assert.Equal(t, 1, v.CurrentPage)
	for _, item := range v.Items {
		assert.Contains(t, item.Name, "char")
	}
	assert.Greater(t, v.TotalItems, 0)
}

func TestBrowserFilterMutationsResetPage(t *testing.T) {
	b := NewBrowser(5, nil)
	mutations := map[string]func(){
		"type":      func() { b.SetType("fire") },
		"favorites": func() { b.SetFavoritesOnly(true) },
		"toggle":    func() { b.ToggleFavoritesOnly() },
	}
	for name, mutate := range mutations {
		b.SetPage(4)
		mutate()
		assert.Equal(t, 1, b.Page(), name)
	}
}

func TestBrowserPrevPageAtStartIsNoop(t *testing.T) {
	b := NewBrowser(20, nil)
	v := b.View([]domain.Item{{ID: 1, Name: "a"}}, nil, false)
	b.PrevPage(v)
	assert.Equal(t, 1, b.Page())
}

func TestFavoritesOnlyWithEmptySet(t *testing.T) {
	client := newMockClient(10)
	session, _ := newSession(t, client, 10)
	require.NoError(t, session.Start(context.Background()))

	b := NewBrowser(20, nil)
	b.SetFavoritesOnly(true)
	v := session.View(b)
	assert.Equal(t, 0, v.TotalItems)
	assert.Equal(t, domain.EmptyNoFavorites, v.Empty)
}

func TestViewWhileLoading(t *testing.T) {
	session, _ := newSession(t, newMockClient(1), 1)
	v := session.View(NewBrowser(20, nil))
	assert.Equal(t, domain.EmptyLoading, v.Empty)
	assert.False(t, session.Loaded())
}

type hookCall struct {
	point string
	env   map[string]string
}

type recordingHooks struct {
	calls []hookCall
	fail  map[string]error
}

func (r *recordingHooks) Run(_ context.Context, point string, env map[string]string) error {
	copied := map[string]string{}
	for k, v := range env {
		copied[k] = v
	}
	r.calls = append(r.calls, hookCall{point: point, env: copied})
	return r.fail[point]
}

func (r *recordingHooks) points() []string {
	out := []string{}
	for _, c := range r.calls {
		out = append(out, c.point)
	}
	return out
}

func TestSessionFiresHooks(t *testing.T) {
	session, _ := newSession(t, newMockClient(6), 6)
	rec := &recordingHooks{}
	session.SetHooks(rec)
	require.NoError(t, session.Start(context.Background()))

	added, err := session.ToggleFavorite(4)
	require.NoError(t, err)
	assert.True(t, added)
	require.NoError(t, session.ClearFavorites(context.Background()))

	assert.Equal(t, []string{hooks.PostCatalogLoad, hooks.PreToggleFavorite, hooks.PostToggleFavorite, hooks.PostClearFavorites}, rec.points())
	assert.Equal(t, "6", rec.calls[0].env["ITEM_COUNT"])
	assert.Equal(t, map[string]string{"ITEM_ID": "4", "ITEM_NAME": "charmander-4", "FAVORITE": "false"}, rec.calls[1].env)
	assert.Equal(t, "true", rec.calls[2].env["FAVORITE"])
}

func TestPreToggleHookCancelsToggle(t *testing.T) {
	session, _ := newSession(t, newMockClient(3), 3)
	rec := &recordingHooks{fail: map[string]error{hooks.PreToggleFavorite: errors.New("vetoed")}}
	session.SetHooks(rec)

	added, err := session.ToggleFavorite(2)
	assert.EqualError(t, err, "vetoed")
	assert.False(t, added)
	assert.False(t, session.Favorites().Contains(2))
	assert.Equal(t, []string{hooks.PreToggleFavorite}, rec.points())

	session.SetHooks(nil)
	added, err = session.ToggleFavorite(2)
	require.NoError(t, err)
	assert.True(t, added)
}

func TestToggleFavoritePersists(t *testing.T) {
	client := newMockClient(10)
	session, backend := newSession(t, client, 10)
	require.NoError(t, session.Start(context.Background()))

	added, err := session.ToggleFavorite(5)
	require.NoError(t, err)
	assert.True(t, added)

	reloaded := favorites.NewStore(backend)
	set, err := reloaded.Load()
	require.NoError(t, err)
	assert.True(t, set.Contains(5))

	b := NewBrowser(20, nil)
	b.SetFavoritesOnly(true)
	v := session.View(b)
	require.Len(t, v.Items, 1)
	assert.Equal(t, 5, v.Items[0].ID)
}

func TestStartSurfacesLoadFailure(t *testing.T) {
	client := new(pokeapi.MockClient)
	client.On("ListItems", mock.Anything, 3, 0).Return(nil, &dexerrors.TransportError{Op: "list items", StatusCode: 500})
	client.On("ListTypes", mock.Anything).Return([]pokeapi.TypeRef{}, nil)
	session, _ := newSession(t, client, 3)

	err := session.Start(context.Background())
	assert.ErrorIs(t, err, dexerrors.ErrCatalogLoad)
	assert.False(t, session.Loaded())
}

func TestDetailReusesEnrichment(t *testing.T) {
	client := newMockClient(3)
	session, _ := newSession(t, client, 3)
	require.NoError(t, session.Start(context.Background()))

	d, err := session.Detail(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, d.ID)
	client.AssertNumberOfCalls(t, "GetItemDetail", 3)
}

func TestDetailForOutsideBatch(t *testing.T) {
	client := newMockClient(1)
	client.On("GetItemDetail", mock.Anything, "mew").Return(pokeapi.Detail{ID: 151, Name: "mew"}, nil)
	client.On("GetItemDetail", mock.Anything, "nope").Return(pokeapi.Detail{}, &dexerrors.TransportError{StatusCode: 404})
	session, _ := newSession(t, client, 1)

	d, err := session.DetailFor(context.Background(), "mew")
	require.NoError(t, err)
	assert.Equal(t, 151, d.ID)

	_, err = session.DetailFor(context.Background(), "nope")
	var nf *dexerrors.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestListUseCase(t *testing.T) {
	client := newMockClient(25)
	session, _ := newSession(t, client, 25)

	var buf bytes.Buffer
	err := NewListUseCase(session).Execute(context.Background(), ListOptions{Type: "fire", PageSize: 20, Page: 9}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Charmander")
	assert.Contains(t, out, "items 1-3 of 3 (page 1/1)")
	assert.NotContains(t, out, "Bulbasaur")
}

func TestListUseCaseRejectsUnknownFormat(t *testing.T) {
	session, _ := newSession(t, newMockClient(1), 1)
	err := NewListUseCase(session).Execute(context.Background(), ListOptions{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestListUseCaseTemplate(t *testing.T) {
	session, _ := newSession(t, newMockClient(6), 6)
	require.NoError(t, session.Start(context.Background()))
	_, err := session.ToggleFavorite(5)
	require.NoError(t, err)

	var buf bytes.Buffer
	opts := ListOptions{Type: "fire", PageSize: 20, Template: "{{id}}:{{name}}:{{favorite}}", Format: "xml"}
	require.NoError(t, NewListUseCase(session).Execute(context.Background(), opts, &buf))
	assert.Equal(t, "4:charmander-4:false\n5:charmeleon-5:true\n6:charizard-6:false\n", buf.String())

	buf.Reset()
	require.NoError(t, NewListUseCase(session).Execute(context.Background(), ListOptions{Type: "fire", PageSize: 20, Template: "ids"}, &buf))
	assert.Equal(t, "4\n5\n6\n", buf.String())

	err = NewListUseCase(session).Execute(context.Background(), ListOptions{Template: "{{weight}}"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown variable: weight")
}

func TestShowUseCase(t *testing.T) {
	client := newMockClient(3)
	session, _ := newSession(t, client, 3)

	var buf bytes.Buffer
	require.NoError(t, NewShowUseCase(session).Execute(context.Background(), "2", "yaml", &buf))
	assert.Contains(t, buf.String(), "id: 2")
	assert.Error(t, NewShowUseCase(session).Execute(context.Background(), "2", "xml", &bytes.Buffer{}))
}

func TestFavoritesUseCase(t *testing.T) {
	client := newMockClient(6)
	session, _ := newSession(t, client, 6)
	uc := NewFavoritesUseCase(session)

	id, added, err := uc.Toggle(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, 4, id)
	assert.True(t, added)

	var buf bytes.Buffer
	require.NoError(t, uc.List(context.Background(), true, &buf))
	assert.Equal(t, "#004  Charmander 4", strings.TrimSpace(buf.String()))

	require.NoError(t, uc.Clear(context.Background()))
	buf.Reset()
	require.NoError(t, uc.List(context.Background(), false, &buf))
	assert.Contains(t, buf.String(), "No favorites yet")
}

func TestTypesUseCase(t *testing.T) {
	client := newMockClient(1)
	client.On("ListItemsByType", mock.Anything, "normal").Return(make([]pokeapi.ListEntry, 3), nil)
	client.On("ListItemsByType", mock.Anything, "fire").Return(make([]pokeapi.ListEntry, 2), nil)
	session, _ := newSession(t, client, 1)

	var buf bytes.Buffer
	require.NoError(t, NewTypesUseCase(session).Execute(context.Background(), false, &buf))
	assert.Equal(t, "normal\nfire\n", buf.String())

	buf.Reset()
	require.NoError(t, NewTypesUseCase(session).Execute(context.Background(), true, &buf))
	assert.Equal(t, "normal     3\nfire       2\n", buf.String())
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	fn()

	require.NoError(t, w.Close())
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return string(data)
}

func TestSessionEmitsStructuredLogsInDebug(t *testing.T) {
	colors.EnableStructuredLogging()
	colors.SetDebug(true)
	defer colors.SetDebug(false)

	session, _ := newSession(t, newMockClient(3), 3)
	output := captureStderr(t, func() {
		require.NoError(t, session.LoadCatalog(context.Background()))
		_, err := session.ToggleFavorite(2)
		require.NoError(t, err)
	})

	assert.Contains(t, output, `"component":"catalog","action":"load","status":"started"`)
	assert.Contains(t, output, `"component":"catalog","action":"load","status":"completed"`)
	assert.Contains(t, output, `"items":3`)
	assert.Contains(t, output, `"component":"favorites","action":"toggle","status":"completed"`)
}

func TestSessionStructuredLogsSilentWithoutDebug(t *testing.T) {
	colors.SetDebug(false)
	session, _ := newSession(t, newMockClient(2), 2)
	output := captureStderr(t, func() {
		require.NoError(t, session.LoadCatalog(context.Background()))
	})
	assert.NotContains(t, output, `"component":"catalog"`)
}
