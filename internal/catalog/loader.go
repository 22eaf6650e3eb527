package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/cristianoliveira/dexview/internal/colors"
	"github.com/cristianoliveira/dexview/internal/config"
	"github.com/cristianoliveira/dexview/internal/domain"
	dexerrors "github.com/cristianoliveira/dexview/internal/errors"
	"github.com/cristianoliveira/dexview/internal/logging"
	"github.com/cristianoliveira/dexview/internal/pokeapi"
)

// DefaultBatchSize is the number of creatures requested at offset 0.
const DefaultBatchSize = 50

// Load stages reported in CatalogLoadError.
const (
	StageList   = "list"
	StageTypes  = "types"
	StageEnrich = "enrich"
)

// Loader fetches and enriches a catalog batch.
type Loader struct {
	client    pokeapi.Client
	batchSize int
	logger    logging.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithBatchSize overrides the batch size. Non-positive values are ignored.
func WithBatchSize(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.batchSize = n
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger logging.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader for client.
func NewLoader(client pokeapi.Client, opts ...LoaderOption) *Loader {
	if client == nil {
		panic("catalog.NewLoader: client dependency cannot be nil")
	}
	l := &Loader{
		client:    client,
		batchSize: DefaultBatchSize,
		logger:    logging.With("component", "catalog"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewLoaderFromConfig creates a Loader using batch_size from configuration.
func NewLoaderFromConfig(client pokeapi.Client) *Loader {
	return NewLoader(client, WithBatchSize(config.GetInt("batch_size", DefaultBatchSize)))
}

type enrichResult struct {
	item   domain.Item
	detail pokeapi.Detail
	ok     bool
}

// Load requests one batch, enriches every entry concurrently and fetches the
// type taxonomy alongside. A failed detail request degrades that one item to
// no types and no image. Only a failed list or taxonomy request, or a
// cancelled context, fails the load; nothing partial is published.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	start := time.Now()
	l.logger.Info("catalog load started", "batch_size", l.batchSize)

	var (
		wg       conc.WaitGroup
		types    []pokeapi.TypeRef
		typesErr error
		results  []enrichResult
		listErr  error
	)

	wg.Go(func() {
		types, typesErr = l.client.ListTypes(ctx)
	})
	wg.Go(func() {
		var entries []pokeapi.ListEntry
		entries, listErr = l.client.ListItems(ctx, l.batchSize, 0)
		if listErr != nil {
			return
		}
		results = l.enrich(ctx, entries)
	})
	wg.Wait()

	if listErr != nil {
		return nil, l.fail(StageList, listErr, start)
	}
	if typesErr != nil {
		return nil, l.fail(StageTypes, typesErr, start)
	}
	if err := ctx.Err(); err != nil {
		return nil, l.fail(StageEnrich, err, start)
	}

	items := make([]domain.Item, 0, len(results))
	details := make(map[int]pokeapi.Detail, len(results))
	failed := 0
	for _, r := range results {
		items = append(items, r.item)
		if r.ok {
			details[r.item.ID] = r.detail
		} else {
			failed++
		}
	}
	typeNames := make([]string, 0, len(types))
	for _, t := range types {
		typeNames = append(typeNames, t.Name)
	}

	l.logger.Info("catalog load completed",
		"items", len(items),
		"types", len(typeNames),
		"enrichment_failures", failed,
		"duration_seconds", time.Since(start).Seconds(),
	)
	return newCatalog(items, typeNames, details), nil
}

// enrich fetches one detail per entry with no concurrency cap and joins them
// in batch order.
func (l *Loader) enrich(ctx context.Context, entries []pokeapi.ListEntry) []enrichResult {
	results := make([]enrichResult, len(entries))
	var wg conc.WaitGroup
	for i, entry := range entries {
		wg.Go(func() {
			results[i] = l.enrichOne(ctx, i+1, entry)
		})
	}
	wg.Wait()
	return results
}

func (l *Loader) enrichOne(ctx context.Context, position int, entry pokeapi.ListEntry) enrichResult {
	id, hasID := entry.RemoteID()
	key := entry.Name
	if hasID {
		key = strconv.Itoa(id)
	}

	base := domain.Item{ID: id, Position: position, Name: entry.Name, Types: []string{}}
	if !hasID {
		base.ID = position
	}

	detail, err := l.client.GetItemDetail(ctx, key)
	if err != nil {
		if ctx.Err() == nil {
			l.logger.Warn("item enrichment failed", "name", entry.Name, "position", position, "error", err.Error())
			colors.Debug(fmt.Sprintf("enrichment failed for %s: %v", entry.Name, err))
		}
		return enrichResult{item: base}
	}

	if !hasID && detail.ID > 0 {
		base.ID = detail.ID
	}
	if detail.Types != nil {
		base.Types = detail.Types
	}
	base.Image = detail.Image
	return enrichResult{item: base, detail: detail, ok: true}
}

func (l *Loader) fail(stage string, err error, start time.Time) error {
	l.logger.Error("catalog load failed", "stage", stage, "error", err.Error(),
		"duration_seconds", time.Since(start).Seconds())
	return &dexerrors.CatalogLoadError{Stage: stage, Err: err}
}
