package catalogs

import (
	"github.com/rs/zerolog"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
)

// catalogOptions is a struct that contains the options for the catalog.
type catalogOptions struct {
	logger   *zerolog.Logger
	capacity int
	hooks    []func(*hooks)
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{
		logger:   logging.Default(),
		capacity: 64,
	}
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *catalogOptions) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCapacity presizes the item map.
func WithCapacity(capacity int) Option {
	return func(c *catalogOptions) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// WithItemAddedHook registers fn at construction time. Items restored by
// the initial load do not trigger it.
func WithItemAddedHook(fn ItemAddedHook) Option {
	return func(c *catalogOptions) {
		c.hooks = append(c.hooks, func(h *hooks) { h.OnItemAdded(fn) })
	}
}

// WithItemRemovedHook registers fn at construction time.
func WithItemRemovedHook(fn ItemRemovedHook) Option {
	return func(c *catalogOptions) {
		c.hooks = append(c.hooks, func(h *hooks) { h.OnItemRemoved(fn) })
	}
}
