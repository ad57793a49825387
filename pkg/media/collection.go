package media

import (
	"fmt"
	"slices"
)

// Collection groups other items by reference. Children are shared with
// the catalog, so a change made through the catalog is visible here.
type Collection struct {
	base
	children []Item
}

// NewCollection creates an empty, available collection dated today.
func NewCollection(title string, opts ...Option) *Collection {
	b, o := newBase(title, Today(), opts)
	if !o.created.IsZero() {
		b.published = Date(o.created)
	}
	return &Collection{base: b}
}

// Kind implements Item.
func (c *Collection) Kind() Kind { return KindCollection }

// SetAvailable implements Item. Marking a collection unavailable also marks
// every current child unavailable, recursively. Marking it available
// touches only the collection itself.
func (c *Collection) SetAvailable(available bool) {
	if available {
		c.available = true
		return
	}
	c.markUnavailable(map[string]struct{}{})
}

func (c *Collection) markUnavailable(visited map[string]struct{}) {
	if _, seen := visited[c.id]; seen {
		return
	}
	visited[c.id] = struct{}{}
	c.available = false
	for _, child := range c.children {
		if nested, ok := child.(*Collection); ok {
			nested.markUnavailable(visited)
			continue
		}
		child.SetAvailable(false)
	}
}

// AddChild appends item to the collection.
func (c *Collection) AddChild(item Item) {
	if IsNil(item) {
		return
	}
	c.children = append(c.children, item)
}

// RemoveChild drops every reference to id and reports whether one existed.
func (c *Collection) RemoveChild(id string) bool {
	n := len(c.children)
	c.children = slices.DeleteFunc(c.children, func(child Item) bool {
		return child.ID() == id
	})
	return len(c.children) != n
}

// ReplaceChild swaps the child sharing item's ID for item. It reports
// whether a child was replaced.
func (c *Collection) ReplaceChild(item Item) bool {
	replaced := false
	for i, child := range c.children {
		if child.ID() == item.ID() && child != item {
			c.children[i] = item
			replaced = true
		}
	}
	return replaced
}

// ContainsChild reports whether id is a direct child.
func (c *Collection) ContainsChild(id string) bool {
	return slices.ContainsFunc(c.children, func(child Item) bool {
		return child.ID() == id
	})
}

// Children returns a copy of the child list.
func (c *Collection) Children() []Item {
	return slices.Clone(c.children)
}

// Len returns the number of direct children.
func (c *Collection) Len() int {
	return len(c.children)
}

// Descendants returns every item reachable from the collection, depth
// first, each at most once.
func (c *Collection) Descendants() []Item {
	var out []Item
	visited := map[string]struct{}{c.id: {}}
	var walk func(*Collection)
	walk = func(col *Collection) {
		for _, child := range col.children {
			if _, seen := visited[child.ID()]; seen {
				continue
			}
			visited[child.ID()] = struct{}{}
			out = append(out, child)
			if nested, ok := child.(*Collection); ok {
				walk(nested)
			}
		}
	}
	walk(c)
	return out
}

// Reaches reports whether id is the collection itself or one of its
// descendants.
func (c *Collection) Reaches(id string) bool {
	if c.id == id {
		return true
	}
	return slices.ContainsFunc(c.Descendants(), func(item Item) bool {
		return item.ID() == id
	})
}

// Details implements Item.
func (c *Collection) Details() string {
	return fmt.Sprintf("Collection: %s, Created: %s, Elements: %d, Available: %s",
		c.title, FormatDate(c.published), len(c.children), yesNo(c.available))
}

// String implements fmt.Stringer.
func (c *Collection) String() string { return c.Details() }
