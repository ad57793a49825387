package media

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortStrategy orders a list of items. Implementations return a new slice
// and leave the input untouched.
type SortStrategy func(items []Item) []Item

// Strategy names accepted by LookupSort.
const (
	SortNone  = "none"
	SortTitle = "title"
	SortDate  = "date"
)

// SortByTitle orders items by title, A to Z, using English collation.
func SortByTitle(items []Item) []Item {
	col := collate.New(language.English, collate.IgnoreCase)
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Item) int {
		return col.CompareString(a.Title(), b.Title())
	})
	return out
}

// SortByDateDesc orders items newest first.
func SortByDateDesc(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Item) int {
		return b.PublicationDate().Compare(a.PublicationDate())
	})
	return out
}

// Unsorted returns a copy in the original order.
func Unsorted(items []Item) []Item {
	return slices.Clone(items)
}

// LookupSort resolves a strategy by name. The empty name means none.
func LookupSort(name string) (SortStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SortNone:
		return Unsorted, nil
	case SortTitle:
		return SortByTitle, nil
	case SortDate, "date-desc":
		return SortByDateDesc, nil
	}
	return nil, fmt.Errorf("unknown sort %q (want none, title or date)", name)
}
