package catalogs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/memory"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/catalogs"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

func TestHooks(t *testing.T) {
	preloaded := newNature()
	var added, removed []string
	var updated [][2]media.Item

	c, err := catalogs.New(memory.NewStorage(preloaded),
		catalogs.WithLogger(logging.NewNopLogger()),
		catalogs.WithItemAddedHook(func(item media.Item) { added = append(added, item.ID()) }),
	)
	require.NoError(t, err)
	c.OnItemUpdated(func(old, updated2 media.Item) { updated = append(updated, [2]media.Item{old, updated2}) })
	c.OnItemRemoved(func(item media.Item) { removed = append(removed, item.ID()) })
	c.OnItemAdded(nil)

	dune := newDune()
	require.NoError(t, c.Save(dune))
	require.NoError(t, c.Save(dune))
	require.NoError(t, c.Delete(preloaded.ID()))

	assert.Equal(t, []string{dune.ID()}, added, "loaded items do not fire added hooks")
	require.Len(t, updated, 1)
	assert.Same(t, dune, updated[0][0])
	assert.Equal(t, []string{preloaded.ID()}, removed)
}

func TestLogChanges(t *testing.T) {
	tl := logging.NewTestLogger(t)
	c, _ := newCatalog(t)
	catalogs.LogChanges(c, tl.Logger)

	dune := newDune()
	require.NoError(t, c.Save(dune))
	require.NoError(t, c.Update(dune))
	require.NoError(t, c.Delete(dune.ID()))

	tl.AssertContains(t, "Item added")
	tl.AssertContains(t, "Item updated")
	tl.AssertContains(t, "Item removed")
	tl.AssertContains(t, dune.ID())
}
