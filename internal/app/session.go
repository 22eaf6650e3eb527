package app

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/cristianoliveira/dexview/internal/catalog"
	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/domain"
	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/favorites"
	"github.com/cristianoliveira/dexview/internal/hooks"
	"github.com/cristianoliveira/dexview/internal/pokeapi"
)

// CatalogLoader loads the catalog once.
type CatalogLoader interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// HookRunner runs user scripts at lifecycle points.
type HookRunner interface {
	Run(ctx context.Context, hookPoint string, env map[string]string) error
}

type noopHooks struct{}

func (noopHooks) Run(context.Context, string, map[string]string) error { return nil }

// Session owns the loaded catalog and the favorites store for one process.
type Session struct {
	client    pokeapi.Client
	loader    CatalogLoader
	favorites *favorites.Store
	hooks     HookRunner

	mu      sync.RWMutex
	catalog *catalog.Catalog
}

// NewSession creates a session. Call Start before reading the catalog.
func NewSession(client pokeapi.Client, loader CatalogLoader, store *favorites.Store) *Session {
	if client == nil {
		panic("NewSession: client dependency cannot be nil")
	}
	if loader == nil {
		panic("NewSession: loader dependency cannot be nil")
	}
	if store == nil {
		panic("NewSession: favorites dependency cannot be nil")
	}
	return &Session{client: client, loader: loader, favorites: store, hooks: noopHooks{}}
}

// SetHooks installs the hook runner. A nil runner disables hooks.
func (s *Session) SetHooks(h HookRunner) {
	if h == nil {
		h = noopHooks{}
	}
	s.hooks = h
}

// LoadFavorites reads the durable favorites. A PersistenceError is returned for
// the caller to surface, but the store remains usable with an empty set.
func (s *Session) LoadFavorites() error {
	_, err := s.favorites.Load()
	return err
}

// LoadCatalog loads and publishes the catalog. A failed load leaves any
// previously published catalog untouched.
func (s *Session) LoadCatalog(ctx context.Context) error {
	colors.StructuredInfo("catalog", "load", "started", nil, nil)
	cat, err := s.loader.Load(ctx)
	if err != nil {
		colors.StructuredError("catalog", "load", "failed", err, nil)
		return err
	}
	colors.StructuredInfo("catalog", "load", "completed", nil, map[string]interface{}{
		"items": len(cat.Items()),
		"types": len(cat.Types()),
	})
	s.mu.Lock()
	s.catalog = cat
	s.mu.Unlock()

	if err := s.hooks.Run(ctx, hooks.PostCatalogLoad, map[string]string{
		"ITEM_COUNT": strconv.Itoa(len(cat.Items())),
		"TYPE_COUNT": strconv.Itoa(len(cat.Types())),
	}); err != nil {
		colors.Debug(fmt.Sprintf("catalog load hook: %v", err))
	}
	return nil
}

// Start loads favorites then the catalog. Favorites failures are reported as
// warnings and never stop the catalog load.
func (s *Session) Start(ctx context.Context) error {
	if err := s.LoadFavorites(); err != nil {
		colors.Debug(fmt.Sprintf("favorites load: %v", err))
	}
	return s.LoadCatalog(ctx)
}

// Catalog returns the published catalog, or nil while loading.
func (s *Session) Catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Loaded reports whether a catalog has been published.
func (s *Session) Loaded() bool {
	return s.Catalog() != nil
}

// Items returns the catalog items, or nil while loading.
func (s *Session) Items() []domain.Item {
	if cat := s.Catalog(); cat != nil {
		return cat.Items()
	}
	return nil
}

// Types returns the taxonomy, or nil while loading.
func (s *Session) Types() []string {
	if cat := s.Catalog(); cat != nil {
		return cat.Types()
	}
	return nil
}

// Favorites returns the favorites store.
func (s *Session) Favorites() *favorites.Store {
	return s.favorites
}

// Client returns the remote client.
func (s *Session) Client() pokeapi.Client {
	return s.client
}

// View builds b's current page over the session catalog.
func (s *Session) View(b *Browser) domain.View {
	cat := s.Catalog()
	if cat == nil {
		return b.View(nil, s.favorites.Snapshot(), true)
	}
	return b.View(cat.Items(), s.favorites.Snapshot(), false)
}

// ToggleFavorite flips membership of id and persists it. A failing
// pre-toggle hook in abort mode cancels the toggle.
func (s *Session) ToggleFavorite(id int) (bool, error) {
	ctx := context.Background()
	env := map[string]string{
		"ITEM_ID":  strconv.Itoa(id),
		"FAVORITE": strconv.FormatBool(s.favorites.Contains(id)),
	}
	if item, ok := s.Find(strconv.Itoa(id)); ok {
		env["ITEM_NAME"] = item.Name
	}
	if err := s.hooks.Run(ctx, hooks.PreToggleFavorite, env); err != nil {
		return s.favorites.Contains(id), err
	}

	added, err := s.favorites.Toggle(id)
	fields := map[string]interface{}{"id": id, "favorite": added}
	if err != nil {
		colors.StructuredWarn("favorites", "toggle", "failed", err, fields)
		return added, err
	}
	colors.StructuredInfo("favorites", "toggle", "completed", nil, fields)

	env["FAVORITE"] = strconv.FormatBool(added)
	if err := s.hooks.Run(ctx, hooks.PostToggleFavorite, env); err != nil {
		colors.Debug(fmt.Sprintf("toggle hook: %v", err))
	}
	return added, nil
}

// ClearFavorites removes every favorite.
func (s *Session) ClearFavorites(ctx context.Context) error {
	if err := s.favorites.Clear(); err != nil {
		return err
	}
	if err := s.hooks.Run(ctx, hooks.PostClearFavorites, nil); err != nil {
		colors.Debug(fmt.Sprintf("clear hook: %v", err))
	}
	return nil
}

// Find resolves idOrName against the loaded catalog.
func (s *Session) Find(idOrName string) (domain.Item, bool) {
	cat := s.Catalog()
	if cat == nil {
		return domain.Item{}, false
	}
	return cat.Find(idOrName)
}

// Detail returns the detail record for id, reusing the record fetched during
// enrichment when there is one.
func (s *Session) Detail(ctx context.Context, id int) (pokeapi.Detail, error) {
	if cat := s.Catalog(); cat != nil {
		if d, ok := cat.Detail(id); ok {
			return d, nil
		}
	}
	return s.client.GetItemDetail(ctx, strconv.Itoa(id))
}

// DetailFor resolves idOrName in the catalog first and falls back to asking
// the remote service directly, so creatures outside the batch can be shown.
func (s *Session) DetailFor(ctx context.Context, idOrName string) (pokeapi.Detail, error) {
	if item, ok := s.Find(idOrName); ok {
		return s.Detail(ctx, item.ID)
	}
	d, err := s.client.GetItemDetail(ctx, idOrName)
	if err != nil {
		if dexerrors.Is(err, dexerrors.ErrNotFound) {
			return pokeapi.Detail{}, &dexerrors.NotFoundError{Resource: "creature", ID: idOrName}
		}
		return pokeapi.Detail{}, err
	}
	return d, nil
}
