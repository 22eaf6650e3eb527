package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/cristianoliveira/dexview/internal/app"
	"github.com/cristianoliveira/dexview/internal/catalog"
	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/config"
	"github.com/cristianoliveira/dexview/internal/favorites"
	"github.com/cristianoliveira/dexview/internal/hooks"
	"github.com/cristianoliveira/dexview/internal/pokeapi"
	"github.com/cristianoliveira/dexview/internal/search"
	"github.com/cristianoliveira/dexview/internal/settings"
	"github.com/cristianoliveira/dexview/internal/status"
	"github.com/cristianoliveira/dexview/internal/storage"
	"github.com/cristianoliveira/dexview/internal/version"
)

// runtime wires the process dependencies on first use, after the root
// command has loaded the configuration.
type runtime struct {
	once     sync.Once
	backend  storage.Store
	hooks    *hooks.Runner
	session  *app.Session
	settings *settings.Manager
	err      error
}

var deps = &runtime{}

func (r *runtime) setup() {
	r.once.Do(func() {
		backend, err := storage.NewFromConfig()
		if err != nil {
			r.err = fmt.Errorf("open storage: %w", err)
			return
		}
		client := pokeapi.NewFromConfig()
		r.backend = backend
		r.settings = settings.NewManager(backend)
		r.hooks = hooks.NewFromConfig()
		r.session = app.NewSession(client, catalog.NewLoaderFromConfig(client), favorites.NewStore(backend))
		r.session.SetHooks(r.hooks)
	})
}

// Session returns the shared session.
func (r *runtime) Session() (*app.Session, error) {
	r.setup()
	return r.session, r.err
}

// Settings returns the browser preferences manager.
func (r *runtime) Settings() (*settings.Manager, error) {
	r.setup()
	return r.settings, r.err
}

// Close waits for async hooks and releases the storage backend if it was opened.
func (r *runtime) Close() error {
	if r.hooks != nil {
		r.hooks.Wait()
	}
	if r.backend == nil {
		return nil
	}
	return r.backend.Close()
}

// PageSize returns the configured page size.
func (r *runtime) PageSize() int {
	return config.GetInt("page_size", config.DefaultPageSize)
}

// SearchProvider returns the provider selected by search_mode.
func (r *runtime) SearchProvider() search.Provider {
	return search.New(config.Get("search_mode", "substring"))
}

func (r *runtime) ListItems(ctx context.Context, opts app.ListOptions, w io.Writer) error {
	session, err := r.Session()
	if err != nil {
		return err
	}
	if opts.PageSize <= 0 {
		opts.PageSize = r.PageSize()
	}
	if opts.SearchProvider == nil {
		opts.SearchProvider = r.SearchProvider()
	}
	return app.NewListUseCase(session).Execute(ctx, opts, w)
}

func (r *runtime) ShowItem(ctx context.Context, idOrName, format string, w io.Writer) error {
	session, err := r.Session()
	if err != nil {
		return err
	}
	return app.NewShowUseCase(session).Execute(ctx, idOrName, format, w)
}

func (r *runtime) ListFavorites(ctx context.Context, withNames bool, w io.Writer) error {
	session, err := r.Session()
	if err != nil {
		return err
	}
	return app.NewFavoritesUseCase(session).List(ctx, withNames, w)
}

func (r *runtime) ToggleFavorite(ctx context.Context, arg string) (int, bool, error) {
	session, err := r.Session()
	if err != nil {
		return 0, false, err
	}
	return app.NewFavoritesUseCase(session).Toggle(ctx, arg)
}

func (r *runtime) ClearFavorites(ctx context.Context) error {
	session, err := r.Session()
	if err != nil {
		return err
	}
	return app.NewFavoritesUseCase(session).Clear(ctx)
}

func (r *runtime) ListTypes(ctx context.Context, counts bool, w io.Writer) error {
	session, err := r.Session()
	if err != nil {
		return err
	}
	return app.NewTypesUseCase(session).Execute(ctx, counts, w)
}

// Snapshot reads the favorites count and saved browser settings without
// loading the catalog. Unreadable favorites count as none.
func (r *runtime) Snapshot() (status.Snapshot, error) {
	session, err := r.Session()
	if err != nil {
		return status.Snapshot{}, err
	}
	if err := session.LoadFavorites(); err != nil {
		colors.Debug(fmt.Sprintf("status: favorites load: %v", err))
	}
	snap := status.Snapshot{Favorites: session.Favorites().Len()}
	if saved, err := r.settings.Load(); err == nil {
		snap.Query = saved.Query
		snap.Type = saved.Type
		snap.FavoritesOnly = saved.FavoritesOnly
	}
	return snap, nil
}

func (r *runtime) GetConfigString(key, defaultValue string) string {
	return config.Get(key, defaultValue)
}

func (r *runtime) Version() string {
	return version.String()
}
