// Package persistence provides the storage backends of the media catalog.
// Items are flattened into Records; collections store the IDs of their
// children and are relinked to the shared instances when loaded.
package persistence

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// Record is the storage form of a single item.
type Record struct {
	ID              string   `json:"id" yaml:"id"`
	Kind            string   `json:"kind" yaml:"kind"`
	Title           string   `json:"title" yaml:"title"`
	PublicationDate string   `json:"publication_date" yaml:"publication_date"`
	Available       bool     `json:"available" yaml:"available"`
	Author          string   `json:"author,omitempty" yaml:"author,omitempty"`
	Publisher       string   `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Pages           int      `json:"pages,omitempty" yaml:"pages,omitempty"`
	ISSN            string   `json:"issn,omitempty" yaml:"issn,omitempty"`
	Issue           int      `json:"issue,omitempty" yaml:"issue,omitempty"`
	Children        []string `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewRecord flattens an item.
func NewRecord(item media.Item) Record {
	rec := Record{
		ID:              item.ID(),
		Kind:            item.Kind().String(),
		Title:           item.Title(),
		PublicationDate: media.FormatDate(item.PublicationDate()),
		Available:       item.Available(),
	}
	switch v := item.(type) {
	case *media.Book:
		rec.Author = v.Author()
		rec.Publisher = v.Publisher()
		rec.Pages = v.Pages()
	case *media.Magazine:
		rec.Publisher = v.Publisher()
		rec.Issue = v.Issue()
		rec.ISSN = v.ISSN()
	case *media.Collection:
		for _, child := range v.Children() {
			rec.Children = append(rec.Children, child.ID())
		}
	}
	return rec
}

// ToRecords flattens items, preserving order.
func ToRecords(items []media.Item) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if media.IsNil(item) {
			continue
		}
		records = append(records, NewRecord(item))
	}
	return records
}

// Item rebuilds the item described by the record. Collection children are
// not resolved here; see FromRecords.
func (r Record) Item() (media.Item, error) {
	var published time.Time
	if r.PublicationDate != "" {
		d, err := media.ParseDate(r.PublicationDate)
		if err != nil {
			return nil, pkgerrors.NewParseError("date", "", fmt.Sprintf("item %s: %v", r.ID, err), err)
		}
		published = d
	}

	kind, err := media.ParseKind(r.Kind)
	if err != nil {
		return nil, pkgerrors.NewValidationError("kind", r.Kind, err.Error())
	}

	opts := []media.Option{media.WithID(r.ID), media.WithAvailable(r.Available)}
	switch kind {
	case media.KindBook:
		return media.NewBook(r.Title, r.Author, published, r.Publisher, r.Pages, opts...), nil
	case media.KindMagazine:
		opts = append(opts, media.WithISSN(r.ISSN))
		return media.NewMagazine(r.Title, published, r.Publisher, r.Issue, opts...), nil
	default:
		opts = append(opts, media.WithCreated(published))
		return media.NewCollection(r.Title, opts...), nil
	}
}

// FromRecords rebuilds items and relinks collection children to the
// shared instances. Child IDs that match no record are dropped with a
// warning. Records without an ID are rejected.
func FromRecords(records []Record, logger *zerolog.Logger) ([]media.Item, error) {
	items := make([]media.Item, 0, len(records))
	byID := make(map[string]media.Item, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return nil, pkgerrors.NewValidationError("id", nil, fmt.Sprintf("record %d has no id", i))
		}
		item, err := rec.Item()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		byID[rec.ID] = item
	}

	for _, rec := range records {
		col, ok := byID[rec.ID].(*media.Collection)
		if !ok {
			continue
		}
		for _, childID := range rec.Children {
			child, found := byID[childID]
			if !found {
				if logger != nil {
					logger.Warn().
						Str("collection_id", rec.ID).
						Str("item_id", childID).
						Msg("Dropping reference to unknown item")
				}
				continue
			}
			col.AddChild(child)
		}
	}

	return items, nil
}
