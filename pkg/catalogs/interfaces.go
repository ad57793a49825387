package catalogs

import (
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// Reader provides read-only access to catalog data.
type Reader interface {
	// FindByID returns the item or a NotFound error.
	FindByID(id string) (media.Item, error)

	// FindAll returns every item in insertion order.
	FindAll() []media.Item

	// Query helpers. All return fresh slices.
	FindByTitle(query string) []media.Item
	FindByAuthor(query string) []*media.Book
	FindByPublicationYear(year int) []media.Item
	Collections() []*media.Collection

	// Len returns the number of stored items.
	Len() int
}

// Writer provides write operations for catalog data. Every successful
// write is followed by a full save through the persistence backend.
type Writer interface {
	// Save inserts or replaces an item by ID.
	Save(item media.Item) error

	// Update replaces an existing item and fails with NotFound otherwise.
	Update(item media.Item) error

	// Delete removes an item and every collection reference to it.
	Delete(id string) error
}

// Observable lets callers react to catalog changes.
type Observable interface {
	OnItemAdded(fn ItemAddedHook)
	OnItemUpdated(fn ItemUpdatedHook)
	OnItemRemoved(fn ItemRemovedHook)
}

// Catalog is the complete interface combining all catalog capabilities.
type Catalog interface {
	Reader
	Writer
	Observable
}
