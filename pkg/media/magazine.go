package media

import (
	"fmt"
	"time"
)

// Magazine is a single periodical issue.
type Magazine struct {
	base
	publisher string
	issue     int
	issn      string
}

// NewMagazine creates an available magazine with a fresh ID.
func NewMagazine(title string, published time.Time, publisher string, issue int, opts ...Option) *Magazine {
	b, o := newBase(title, published, opts)
	return &Magazine{
		base:      b,
		publisher: publisher,
		issue:     issue,
		issn:      o.issn,
	}
}

// Publisher returns the magazine publisher.
func (m *Magazine) Publisher() string { return m.publisher }

// Issue returns the issue number.
func (m *Magazine) Issue() int { return m.issue }

// ISSN returns the serial number, empty when unknown.
func (m *Magazine) ISSN() string { return m.issn }

// Kind implements Item.
func (m *Magazine) Kind() Kind { return KindMagazine }

// SetAvailable implements Item.
func (m *Magazine) SetAvailable(available bool) { m.available = available }

// Details implements Item.
func (m *Magazine) Details() string {
	if m.issn == "" {
		return fmt.Sprintf("Magazine: %s, Published: %s, Publisher: %s, Issue: %d, Available: %s",
			m.title, FormatDate(m.published), m.publisher, m.issue, yesNo(m.available))
	}
	return fmt.Sprintf("Magazine: %s, ISSN: %s, Published: %s, Publisher: %s, Issue: %d, Available: %s",
		m.title, m.issn, FormatDate(m.published), m.publisher, m.issue, yesNo(m.available))
}

// String implements fmt.Stringer.
func (m *Magazine) String() string { return m.Details() }
