package catalogs

import (
	"sync"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// Hook function types for item events
type (
	// ItemAddedHook is called when an item is added to the catalog
	ItemAddedHook func(item media.Item)

	// ItemUpdatedHook is called when an existing item is written again
	ItemUpdatedHook func(old, updated media.Item)

	// ItemRemovedHook is called when an item is removed from the catalog
	ItemRemovedHook func(item media.Item)
)

// hooks manages event callbacks for catalog changes
type hooks struct {
	mu            sync.RWMutex
	onItemAdded   []ItemAddedHook
	onItemUpdated []ItemUpdatedHook
	onItemRemoved []ItemRemovedHook
}

// OnItemAdded registers a callback for when items are added
func (h *hooks) OnItemAdded(fn ItemAddedHook) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onItemAdded = append(h.onItemAdded, fn)
}

// OnItemUpdated registers a callback for when items are updated
func (h *hooks) OnItemUpdated(fn ItemUpdatedHook) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onItemUpdated = append(h.onItemUpdated, fn)
}

// OnItemRemoved registers a callback for when items are removed
func (h *hooks) OnItemRemoved(fn ItemRemovedHook) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onItemRemoved = append(h.onItemRemoved, fn)
}

func (h *hooks) added(item media.Item) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onItemAdded {
		fn(item)
	}
}

func (h *hooks) updated(old, updated media.Item) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onItemUpdated {
		fn(old, updated)
	}
}

func (h *hooks) removed(item media.Item) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onItemRemoved {
		fn(item)
	}
}
