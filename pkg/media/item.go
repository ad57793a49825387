// Package media defines the catalog entities: books, magazines and
// collections that group other items by reference.
//
// Every item is identified solely by its ID. Two values with the same ID
// are the same item even if their other fields differ.
package media

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/constants"
)

// Kind names an item variant.
type Kind string

// Item kinds.
const (
	KindBook       Kind = "book"
	KindMagazine   Kind = "magazine"
	KindCollection Kind = "collection"
)

// Kinds lists every item kind in display order.
func Kinds() []Kind {
	return []Kind{KindBook, KindMagazine, KindCollection}
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Label returns the capitalised kind name used in file names and menus.
func (k Kind) Label() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindBook, KindMagazine, KindCollection:
		return k, nil
	}
	return "", fmt.Errorf("unknown item kind %q (want book, magazine or collection)", s)
}

// Item is the common behaviour of every catalog entry.
type Item interface {
	ID() string
	Title() string
	// PublicationDate is the creation date for collections.
	PublicationDate() time.Time
	Available() bool
	SetAvailable(available bool)
	Details() string
	Kind() Kind
}

// Equal reports whether a and b denote the same item.
func Equal(a, b Item) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	return a.ID() == b.ID()
}

// IsNil reports whether item is nil or a typed nil pointer.
func IsNil(item Item) bool {
	switch v := item.(type) {
	case nil:
		return true
	case *Book:
		return v == nil
	case *Magazine:
		return v == nil
	case *Collection:
		return v == nil
	}
	return false
}

// base holds the fields shared by all variants.
type base struct {
	id        string
	title     string
	published time.Time
	available bool
}

func (b *base) ID() string                 { return b.id }
func (b *base) Title() string              { return b.title }
func (b *base) PublicationDate() time.Time { return b.published }
func (b *base) Available() bool            { return b.available }

// Option configures an item at construction time.
type Option func(*options)

type options struct {
	id        string
	available bool
	issn      string
	created   time.Time
}

func defaultOptions() *options {
	return &options{available: true}
}

// WithID restores a persisted identifier instead of generating one.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithAvailable sets the initial availability. New items are available.
func WithAvailable(available bool) Option {
	return func(o *options) {
		o.available = available
	}
}

// WithISSN sets the ISSN of a magazine. Ignored by other variants.
func WithISSN(issn string) Option {
	return func(o *options) {
		o.issn = issn
	}
}

func newBase(title string, published time.Time, opts []Option) (base, *options) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	return base{
		id:        o.id,
		title:     title,
		published: Date(published),
		available: o.available,
	}, o
}

// WithCreated restores the creation date of a collection. Ignored by
// other variants.
func WithCreated(created time.Time) Option {
	return func(o *options) {
		o.created = created
	}
}

// Date truncates t to a calendar date in UTC.
func Date(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date.
func Today() time.Time {
	return Date(time.Now())
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateLayout, strings.TrimSpace(s))
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(constants.DateLayout)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
