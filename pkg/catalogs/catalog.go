// Package catalogs holds the canonical id to item mapping of the media
// library. The catalog keeps collection references consistent across
// writes and hands the full item set to its persistence backend after
// every successful mutation.
package catalogs

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// Ensure catalog implements Catalog.
var _ Catalog = (*catalog)(nil)

// catalog is the default Catalog implementation. Its map is guarded by mu;
// items themselves are shared pointers and follow a single-writer policy.
type catalog struct {
	mu          sync.RWMutex
	items       map[string]media.Item
	order       []string
	persistence Persistence
	logger      *zerolog.Logger
	hooks       hooks
}

// New creates a catalog and loads it from p. A nil p yields a catalog that
// lives only in memory. Load failures are returned as storage errors.
func New(p Persistence, opts ...Option) (Catalog, error) {
	options := catalogDefaults().apply(opts...)

	c := &catalog{
		items:       make(map[string]media.Item, options.capacity),
		order:       make([]string, 0, options.capacity),
		persistence: p,
		logger:      options.logger,
	}
	for _, register := range options.hooks {
		register(&c.hooks)
	}

	if p == nil {
		return c, nil
	}

	items, err := p.LoadAll()
	if err != nil {
		if !pkgerrors.IsStorageError(err) {
			err = pkgerrors.NewStorageError("catalog", "load", err)
		}
		return nil, err
	}
	for _, item := range items {
		if media.IsNil(item) {
			continue
		}
		c.put(item)
	}
	c.logger.Debug().Int("items", len(c.items)).Msg("Catalog loaded")

	return c, nil
}

// Save implements Writer.
func (c *catalog) Save(item media.Item) error {
	if media.IsNil(item) {
		return pkgerrors.NewValidationError("item", nil, "cannot be nil")
	}
	return c.write(item, false)
}

// Update implements Writer.
func (c *catalog) Update(item media.Item) error {
	if media.IsNil(item) {
		return pkgerrors.NewValidationError("item", nil, "cannot be nil")
	}
	return c.write(item, true)
}

// write stores item and persists. With mustExist the existence check and
// the store happen under the same lock.
func (c *catalog) write(item media.Item, mustExist bool) error {
	c.mu.Lock()
	if _, exists := c.items[item.ID()]; mustExist && !exists {
		c.mu.Unlock()
		return &pkgerrors.NotFoundError{Resource: "item", ID: item.ID()}
	}
	old := c.put(item)
	c.persistLocked()
	c.mu.Unlock()

	if old == nil {
		c.hooks.added(item)
	} else {
		c.hooks.updated(old, item)
	}
	return nil
}

// put stores item and returns the instance it replaced, if any. When a
// different instance replaces an existing ID, collections referencing the
// old instance are relinked to the new one. Callers hold mu.
func (c *catalog) put(item media.Item) media.Item {
	id := item.ID()
	old, exists := c.items[id]
	c.items[id] = item
	if !exists {
		c.order = append(c.order, id)
		return nil
	}
	if old != item {
		for _, other := range c.items {
			if col, ok := other.(*media.Collection); ok {
				col.ReplaceChild(item)
			}
		}
	}
	return old
}

// Delete implements Writer.
func (c *catalog) Delete(id string) error {
	c.mu.Lock()
	item, exists := c.items[id]
	if !exists {
		c.mu.Unlock()
		return &pkgerrors.NotFoundError{Resource: "item", ID: id}
	}

	for _, other := range c.items {
		if col, ok := other.(*media.Collection); ok && col.RemoveChild(id) {
			c.logger.Debug().
				Str("item_id", id).
				Str("collection_id", col.ID()).
				Msg("Removed item from collection before delete")
		}
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(key string) bool { return key == id })
	c.persistLocked()
	c.mu.Unlock()

	c.hooks.removed(item)
	return nil
}

// persistLocked hands the current item set to the backend. Failures are
// logged and swallowed; the in-memory state stays authoritative.
func (c *catalog) persistLocked() {
	if c.persistence == nil {
		return
	}
	if err := c.persistence.SaveAll(c.listLocked()); err != nil {
		c.logger.Warn().Err(err).Int("items", len(c.items)).Msg("Failed to persist catalog")
	}
}

func (c *catalog) listLocked() []media.Item {
	out := make([]media.Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// FindByID implements Reader.
func (c *catalog) FindByID(id string) (media.Item, error) {
	c.mu.RLock()
	item, ok := c.items[id]
	c.mu.RUnlock()
	if !ok {
		return nil, &pkgerrors.NotFoundError{Resource: "item", ID: id}
	}
	return item, nil
}

// FindAll implements Reader.
func (c *catalog) FindAll() []media.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.listLocked()
}

// Len implements Reader.
func (c *catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// filter returns items matching keep, in insertion order.
func (c *catalog) filter(keep func(media.Item) bool) []media.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []media.Item{}
	for _, id := range c.order {
		if item := c.items[id]; keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// FindByTitle implements Reader. Matching is a case-insensitive substring
// test; an empty query matches everything.
func (c *catalog) FindByTitle(query string) []media.Item {
	needle := fold(query)
	return c.filter(func(item media.Item) bool {
		return strings.Contains(fold(item.Title()), needle)
	})
}

// FindByAuthor implements Reader. Only books have authors.
func (c *catalog) FindByAuthor(query string) []*media.Book {
	needle := fold(query)
	books := []*media.Book{}
	for _, item := range c.filter(func(item media.Item) bool {
		book, ok := item.(*media.Book)
		return ok && strings.Contains(fold(book.Author()), needle)
	}) {
		books = append(books, item.(*media.Book))
	}
	return books
}

// FindByPublicationYear implements Reader.
func (c *catalog) FindByPublicationYear(year int) []media.Item {
	return c.filter(func(item media.Item) bool {
		return item.PublicationDate().Year() == year
	})
}

// Collections implements Reader.
func (c *catalog) Collections() []*media.Collection {
	cols := []*media.Collection{}
	for _, item := range c.filter(func(item media.Item) bool {
		return item.Kind() == media.KindCollection
	}) {
		cols = append(cols, item.(*media.Collection))
	}
	return cols
}

// OnItemAdded implements Observable.
func (c *catalog) OnItemAdded(fn ItemAddedHook) { c.hooks.OnItemAdded(fn) }

// OnItemUpdated implements Observable.
func (c *catalog) OnItemUpdated(fn ItemUpdatedHook) { c.hooks.OnItemUpdated(fn) }

// OnItemRemoved implements Observable.
func (c *catalog) OnItemRemoved(fn ItemRemovedHook) { c.hooks.OnItemRemoved(fn) }

// String implements fmt.Stringer.
func (c *catalog) String() string {
	return fmt.Sprintf("catalog(%d items)", c.Len())
}

// fold returns the case-folded form of s for case-insensitive matching.
func fold(s string) string {
	return cases.Fold().String(s)
}
