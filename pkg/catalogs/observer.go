package catalogs

import (
	"github.com/rs/zerolog"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// LogChanges registers hooks that write one log line per catalog change.
func LogChanges(c Observable, logger *zerolog.Logger) {
	c.OnItemAdded(func(item media.Item) {
		logger.Info().
			Str("item_id", item.ID()).
			Str("kind", item.Kind().String()).
			Str("title", item.Title()).
			Msg("Item added")
	})
	c.OnItemUpdated(func(_, updated media.Item) {
		logger.Debug().
			Str("item_id", updated.ID()).
			Bool("available", updated.Available()).
			Msg("Item updated")
	})
	c.OnItemRemoved(func(item media.Item) {
		logger.Info().
			Str("item_id", item.ID()).
			Str("title", item.Title()).
			Msg("Item removed")
	})
}
