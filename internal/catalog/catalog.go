// Package catalog loads the creature batch once, enriches every entry with its
// detail record and publishes an immutable Catalog.
package catalog

import (
	"slices"
	"time"

	"github.com/cristianoliveira/dexview/internal/domain"
	"github.com/cristianoliveira/dexview/internal/pokeapi"
)

// Catalog is the published, read-only result of a load. All accessors return copies.
type Catalog struct {
	items    []domain.Item
	types    []string
	details  map[int]pokeapi.Detail
	byID     map[int]int
	loadedAt time.Time
}

func newCatalog(items []domain.Item, types []string, details map[int]pokeapi.Detail) *Catalog {
	byID := make(map[int]int, len(items))
	for i, item := range items {
		byID[item.ID] = i
	}
	return &Catalog{
		items:    items,
		types:    types,
		details:  details,
		byID:     byID,
		loadedAt: time.Now(),
	}
}

// Items returns a copy of every item in batch order.
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item.Clone())
	}
	return out
}

// Types returns a copy of the type taxonomy names.
func (c *Catalog) Types() []string {
	return slices.Clone(c.types)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Item returns the item with the given remote id.
func (c *Catalog) Item(id int) (domain.Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Item{}, false
	}
	return c.items[idx].Clone(), true
}

// Find looks an item up by id or name.
func (c *Catalog) Find(idOrName string) (domain.Item, bool) {
	item, ok := domain.FindItem(c.items, idOrName)
	if !ok {
		return domain.Item{}, false
	}
	return item.Clone(), true
}

// Detail returns the detail record fetched during enrichment, so callers can
// avoid asking the remote service again. Items whose enrichment failed have none.
func (c *Catalog) Detail(id int) (pokeapi.Detail, bool) {
	d, ok := c.details[id]
	if !ok {
		return pokeapi.Detail{}, false
	}
	return cloneDetail(d), true
}

// LoadedAt returns when the catalog was published.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}

func cloneDetail(d pokeapi.Detail) pokeapi.Detail {
	d.Types = slices.Clone(d.Types)
	d.Stats = slices.Clone(d.Stats)
	d.Abilities = slices.Clone(d.Abilities)
	return d
}
