// Package library is the application layer of the media catalog. It
// orchestrates catalog calls and owns the availability rules tied to
// collection membership.
package library

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/catalogs"
	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// Service defines the operations offered to the console and the CLI.
type Service interface {
	SaveItem(ctx context.Context, item media.Item) error
	FindItem(ctx context.Context, id string) (media.Item, error)
	ListItems(ctx context.Context, sort media.SortStrategy) []media.Item
	UpdateItem(ctx context.Context, item media.Item) error
	DeleteItem(ctx context.Context, id string) error

	FindByTitle(ctx context.Context, query string) []media.Item
	FindBooksByAuthor(ctx context.Context, query string) []*media.Book
	FindByPublicationYear(ctx context.Context, year int) []media.Item

	Collections(ctx context.Context) []*media.Collection
	CollectionItems(ctx context.Context, collectionID string) ([]media.Item, error)

	// AddToCollection marks the item unavailable and appends it to the
	// collection.
	AddToCollection(ctx context.Context, collectionID, itemID string) error

	// RemoveFromCollection marks the item available and drops it from the
	// collection.
	RemoveFromCollection(ctx context.Context, collectionID, itemID string) error
}

// Ensure service implements Service.
var _ Service = (*service)(nil)

type service struct {
	catalog catalogs.Catalog
	logger  *zerolog.Logger
}

// Option configures the service.
type Option func(*service)

// WithLogger sets the fallback logger used when a context carries none.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a Service backed by catalog.
func New(catalog catalogs.Catalog, opts ...Option) Service {
	s := &service{catalog: catalog, logger: logging.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// log returns the context logger, or the service logger when the context
// carries none.
func (s *service) log(ctx context.Context) *zerolog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

func (s *service) SaveItem(ctx context.Context, item media.Item) error {
	if err := s.catalog.Save(item); err != nil {
		return err
	}
	s.log(ctx).Info().
		Str("item_id", item.ID()).
		Str("kind", item.Kind().String()).
		Msg("Saved item")
	return nil
}

func (s *service) FindItem(ctx context.Context, id string) (media.Item, error) {
	s.log(ctx).Debug().Str("item_id", id).Msg("Finding item")
	return s.catalog.FindByID(id)
}

func (s *service) ListItems(ctx context.Context, sort media.SortStrategy) []media.Item {
	items := s.catalog.FindAll()
	s.log(ctx).Debug().Int("count", len(items)).Msg("Listing items")
	if sort == nil {
		return items
	}
	return sort(items)
}

func (s *service) UpdateItem(ctx context.Context, item media.Item) error {
	if err := s.catalog.Update(item); err != nil {
		return err
	}
	s.log(ctx).Info().Str("item_id", item.ID()).Msg("Updated item")
	return nil
}

func (s *service) DeleteItem(ctx context.Context, id string) error {
	if err := s.catalog.Delete(id); err != nil {
		return err
	}
	s.log(ctx).Info().Str("item_id", id).Msg("Deleted item")
	return nil
}

func (s *service) FindByTitle(ctx context.Context, query string) []media.Item {
	s.log(ctx).Debug().Str("title", query).Msg("Searching by title")
	return s.catalog.FindByTitle(query)
}

func (s *service) FindBooksByAuthor(ctx context.Context, query string) []*media.Book {
	s.log(ctx).Debug().Str("author", query).Msg("Searching by author")
	return s.catalog.FindByAuthor(query)
}

func (s *service) FindByPublicationYear(ctx context.Context, year int) []media.Item {
	s.log(ctx).Debug().Int("year", year).Msg("Searching by year")
	return s.catalog.FindByPublicationYear(year)
}

func (s *service) Collections(ctx context.Context) []*media.Collection {
	s.log(ctx).Debug().Msg("Listing collections")
	return s.catalog.Collections()
}

func (s *service) CollectionItems(ctx context.Context, collectionID string) ([]media.Item, error) {
	col, err := s.collection(collectionID, "list collection")
	if err != nil {
		return nil, err
	}
	s.log(ctx).Debug().Str("collection_id", collectionID).Int("count", col.Len()).Msg("Listing collection")
	return col.Children(), nil
}

func (s *service) AddToCollection(ctx context.Context, collectionID, itemID string) error {
	const op = "add to collection"
	col, item, err := s.resolve(collectionID, itemID, op)
	if err != nil {
		return err
	}

	if itemID == collectionID {
		return pkgerrors.NewStateError(op, itemID, "a collection cannot contain itself")
	}
	if nested, ok := item.(*media.Collection); ok && nested.Reaches(collectionID) {
		return pkgerrors.NewStateError(op, itemID, "would create a cycle")
	}
	// Membership is exclusive across collections at this layer only.
	for _, other := range s.catalog.Collections() {
		if other.ContainsChild(itemID) {
			return pkgerrors.NewStateError(op, itemID, fmt.Sprintf("already in collection %s", other.ID()))
		}
	}

	item.SetAvailable(false)
	if err := s.catalog.Update(item); err != nil {
		return err
	}
	col.AddChild(item)
	if err := s.catalog.Update(col); err != nil {
		return err
	}

	s.log(ctx).Info().
		Str("collection_id", collectionID).
		Str("item_id", itemID).
		Msg("Added item to collection")
	return nil
}

func (s *service) RemoveFromCollection(ctx context.Context, collectionID, itemID string) error {
	const op = "remove from collection"
	col, item, err := s.resolve(collectionID, itemID, op)
	if err != nil {
		return err
	}

	item.SetAvailable(true)
	if err := s.catalog.Update(item); err != nil {
		return err
	}
	col.RemoveChild(itemID)
	if err := s.catalog.Update(col); err != nil {
		return err
	}

	s.log(ctx).Info().
		Str("collection_id", collectionID).
		Str("item_id", itemID).
		Msg("Removed item from collection")
	return nil
}

// resolve fetches both operands before checking that the first one is a
// collection, so a missing id always reports NotFound.
func (s *service) resolve(collectionID, itemID, op string) (*media.Collection, media.Item, error) {
	target, err := s.catalog.FindByID(collectionID)
	if err != nil {
		return nil, nil, err
	}
	item, err := s.catalog.FindByID(itemID)
	if err != nil {
		return nil, nil, err
	}
	col, err := asCollection(target, op)
	if err != nil {
		return nil, nil, err
	}
	return col, item, nil
}

func (s *service) collection(id, op string) (*media.Collection, error) {
	item, err := s.catalog.FindByID(id)
	if err != nil {
		return nil, err
	}
	return asCollection(item, op)
}

func asCollection(item media.Item, op string) (*media.Collection, error) {
	col, ok := item.(*media.Collection)
	if !ok {
		return nil, pkgerrors.NewStateError(op, item.ID(), fmt.Sprintf("%s is not a collection", item.Kind()))
	}
	return col, nil
}
