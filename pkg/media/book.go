package media

import (
	"fmt"
	"time"
)

// Book is a single bound publication.
type Book struct {
	base
	author    string
	publisher string
	pages     int
}

// NewBook creates an available book with a fresh ID.
func NewBook(title, author string, published time.Time, publisher string, pages int, opts ...Option) *Book {
	b, _ := newBase(title, published, opts)
	return &Book{
		base:      b,
		author:    author,
		publisher: publisher,
		pages:     pages,
	}
}

// Author returns the book author.
func (b *Book) Author() string { return b.author }

// Publisher returns the book publisher.
func (b *Book) Publisher() string { return b.publisher }

// Pages returns the page count.
func (b *Book) Pages() int { return b.pages }

// Kind implements Item.
func (b *Book) Kind() Kind { return KindBook }

// SetAvailable implements Item.
func (b *Book) SetAvailable(available bool) { b.available = available }

// Details implements Item.
func (b *Book) Details() string {
	return fmt.Sprintf("Book: %s by %s, Published: %s, Publisher: %s, Pages: %d, Available: %s",
		b.title, b.author, FormatDate(b.published), b.publisher, b.pages, yesNo(b.available))
}

// String implements fmt.Stringer.
func (b *Book) String() string { return b.Details() }
