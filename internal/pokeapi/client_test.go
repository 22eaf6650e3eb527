package pokeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pikachuJSON = `{
  "id": 25,
  "name": "pikachu",
  "height": 4,
  "weight": 60,
  "types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}],
  "stats": [
    {"base_stat": 35, "stat": {"name": "hp"}},
    {"base_stat": 90, "stat": {"name": "speed"}}
  ],
  "abilities": [
    {"is_hidden": false, "ability": {"name": "static"}},
    {"is_hidden": true, "ability": {"name": "lightning-rod"}}
  ],
  "sprites": {
    "front_default": "https://img/front/25.png",
    "other": {"official-artwork": {"front_default": "https://img/art/25.png"}}
  }
}`

func newTestServer(t *testing.T, handler http.HandlerFunc, opts ...Option) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/", opts...)
}

func TestListItemsPassesLimitAndOffset(t *testing.T) {
	var gotPath, gotQuery, gotAccept, gotUA string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"count": 2, "results": [
			{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
			{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"}]}`))
	})

	entries, err := client.ListItems(context.Background(), 50, 0)
	require.NoError(t, err)
	assert.Equal(t, "/pokemon", gotPath)
	assert.Equal(t, "limit=50&offset=0", gotQuery)
	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, gotUA, "dexview/")
	require.Len(t, entries, 2)
	assert.Equal(t, "ivysaur", entries[1].Name)

	id, ok := entries[1].RemoteID()
	assert.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestGetItemDetailDecodesRecord(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon/pikachu", r.URL.Path)
		_, _ = w.Write([]byte(pikachuJSON))
	})

	d, err := client.GetItemDetail(context.Background(), "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, 25, d.ID)
	assert.Equal(t, []string{"electric"}, d.Types)
	assert.Equal(t, "https://img/art/25.png", d.Image)
	assert.Equal(t, []Stat{{Name: "hp", BaseStat: 35}, {Name: "speed", BaseStat: 90}}, d.Stats)
	assert.Equal(t, Ability{Name: "lightning-rod", IsHidden: true}, d.Abilities[1])
	assert.Equal(t, 4, d.Height)
	assert.Equal(t, 60, d.Weight)
}

func TestImageFallback(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"artwork", `{"sprites": {"front_default": "f", "other": {"official-artwork": {"front_default": "a"}}}}`, "a"},
		{"sprite", `{"sprites": {"front_default": "f", "other": {"official-artwork": {"front_default": null}}}}`, "f"},
		{"none", `{"sprites": {"front_default": null}}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})
			d, err := client.GetItemDetail(context.Background(), "1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Image)
		})
	}
}

func TestNonSuccessStatusIsTransportError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	_, err := client.GetItemDetail(context.Background(), "missingno")
	require.Error(t, err)

	var te *dexerrors.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusNotFound, te.StatusCode)
	assert.Equal(t, "get item detail", te.Op)
	assert.ErrorIs(t, err, dexerrors.ErrTransport)
	assert.ErrorIs(t, err, dexerrors.ErrNotFound)
}

func TestNetworkFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	_, err := NewHTTPClient(baseURL).ListTypes(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, dexerrors.ErrTransport)
}

func TestMalformedBodyIsTransportError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.ListItems(context.Background(), 1, 0)
	assert.ErrorIs(t, err, dexerrors.ErrTransport)
}

func TestTimeoutAndCancellation(t *testing.T) {
	release := make(chan struct{})
	handler := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}
	timed := newTestServer(t, handler, WithTimeout(50*time.Millisecond))
	unbounded := newTestServer(t, handler, WithTimeout(0))
	t.Cleanup(func() { close(release) })

	_, err := timed.ListTypes(context.Background())
	assert.ErrorIs(t, err, dexerrors.ErrTransport)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = unbounded.ListTypes(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithTimeoutDoesNotMutateSharedClient(t *testing.T) {
	shared := &http.Client{}

	c := NewHTTPClient("https://example.test", WithHTTPClient(shared), WithTimeout(2*time.Second))
	assert.Equal(t, time.Duration(0), shared.Timeout, "the caller's client is left untouched")
	assert.Equal(t, 2*time.Second, c.http.Timeout)
	assert.NotSame(t, shared, c.http)

	c = NewHTTPClient("https://example.test", WithTimeout(3*time.Second), WithHTTPClient(shared))
	assert.Equal(t, 3*time.Second, c.http.Timeout, "option order does not drop the timeout")
	assert.Equal(t, time.Duration(0), shared.Timeout)

	c = NewHTTPClient("https://example.test", WithHTTPClient(shared))
	assert.Same(t, shared, c.http)
}

func TestListTypesAndByType(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/type":
			_, _ = w.Write([]byte(`{"results": [{"name": "fire", "url": "u"}, {"name": "water", "url": "u"}]}`))
		case "/type/fire":
			_, _ = w.Write([]byte(`{"name": "fire", "pokemon": [
				{"slot": 1, "pokemon": {"name": "charmander", "url": "https://pokeapi.co/api/v2/pokemon/4/"}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	types, err := client.ListTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []TypeRef{{Name: "fire", URL: "u"}, {Name: "water", URL: "u"}}, types)

	members, err := client.ListItemsByType(context.Background(), "fire")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "charmander", members[0].Name)
}

func TestIDFromURL(t *testing.T) {
	tests := []struct {
		url  string
		id   int
		want bool
	}{
		{"https://pokeapi.co/api/v2/pokemon/25/", 25, true},
		{"https://pokeapi.co/api/v2/pokemon/10001", 10001, true},
		{"https://pokeapi.co/api/v2/pokemon/pikachu/", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		id, ok := IDFromURL(tt.url)
		assert.Equal(t, tt.want, ok, tt.url)
		assert.Equal(t, tt.id, id, tt.url)
	}
}
