package catalogs

import (
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// Persistence is the storage collaborator of a catalog. LoadAll is called
// once at construction; SaveAll receives the complete item set after every
// successful mutation.
type Persistence interface {
	LoadAll() ([]media.Item, error)
	SaveAll(items []media.Item) error
}
