package catalogs_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/memory"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/catalogs"
	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newDune() *media.Book {
	return media.NewBook("Dune", "Frank Herbert", date(1965, 8, 1), "Chilton", 412)
}

func newNature() *media.Magazine {
	return media.NewMagazine("Nature", date(2024, 3, 7), "Springer", 8001)
}

func newCatalog(t *testing.T, items ...media.Item) (catalogs.Catalog, *memory.Storage) {
	t.Helper()
	storage := memory.NewStorage(items...)
	c, err := catalogs.New(storage, catalogs.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	return c, storage
}

func TestNew(t *testing.T) {
	t.Run("loads existing items", func(t *testing.T) {
		dune := newDune()
		c, storage := newCatalog(t, dune, nil)
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, 0, storage.Saves(), "loading does not save")

		got, err := c.FindByID(dune.ID())
		require.NoError(t, err)
		assert.Same(t, dune, got)
	})

	t.Run("nil persistence", func(t *testing.T) {
		c, err := catalogs.New(nil)
		require.NoError(t, err)
		require.NoError(t, c.Save(newDune()))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("load failure is a storage error", func(t *testing.T) {
		storage := memory.NewStorage()
		storage.FailLoad(errors.New("corrupt"))
		_, err := catalogs.New(storage)
		assert.True(t, pkgerrors.IsStorageError(err))
	})
}

func TestSaveAndFind(t *testing.T) {
	c, storage := newCatalog(t)
	dune := newDune()

	require.NoError(t, c.Save(dune))
	got, err := c.FindByID(dune.ID())
	require.NoError(t, err)
	assert.True(t, media.Equal(dune, got))
	assert.Equal(t, 1, storage.Saves())
	assert.Equal(t, []string{dune.ID()}, storage.IDs())

	t.Run("nil is rejected", func(t *testing.T) {
		assert.True(t, pkgerrors.IsValidationError(c.Save(nil)))
		var typedNil *media.Book
		assert.True(t, pkgerrors.IsValidationError(c.Save(typedNil)))
		assert.Equal(t, 1, storage.Saves())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := c.FindByID("missing")
		assert.True(t, pkgerrors.IsNotFound(err))
	})
}

func TestFindAllIsACopy(t *testing.T) {
	dune, nature := newDune(), newNature()
	c, _ := newCatalog(t, dune, nature)

	all := c.FindAll()
	require.Len(t, all, 2)
	assert.Equal(t, dune.ID(), all[0].ID(), "insertion order")
	all[0] = nil

	assert.NotNil(t, c.FindAll()[0])
}

func TestUpdate(t *testing.T) {
	c, storage := newCatalog(t)
	dune := newDune()

	err := c.Update(dune)
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, storage.Saves())

	require.NoError(t, c.Save(dune))
	dune.SetAvailable(false)
	require.NoError(t, c.Update(dune))
	assert.Equal(t, 2, storage.Saves())

	assert.True(t, pkgerrors.IsValidationError(c.Update(nil)))
}

func TestOverwriteRelinksCollections(t *testing.T) {
	dune := media.NewBook("Dune", "Frank Herbert", date(1965, 8, 1), "Chilton", 412, media.WithID("dune"))
	scifi := media.NewCollection("SciFi")
	scifi.AddChild(dune)
	c, _ := newCatalog(t, dune, scifi)

	revised := media.NewBook("Dune", "Frank Herbert", date(1965, 8, 1), "Chilton", 896, media.WithID("dune"))
	require.NoError(t, c.Update(revised))

	got, err := c.FindByID("dune")
	require.NoError(t, err)
	assert.Same(t, revised, got)
	assert.Same(t, revised, scifi.Children()[0])
	assert.Equal(t, 2, c.Len())
}

func TestDelete(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		c, storage := newCatalog(t)
		assert.True(t, pkgerrors.IsNotFound(c.Delete("missing")))
		assert.Equal(t, 0, storage.Saves())
	})

	t.Run("removes references from every collection", func(t *testing.T) {
		dune := newDune()
		a := media.NewCollection("A")
		b := media.NewCollection("B")
		a.AddChild(dune)
		b.AddChild(dune)
		c, storage := newCatalog(t, dune, a, b)

		require.NoError(t, c.Delete(dune.ID()))

		_, err := c.FindByID(dune.ID())
		assert.True(t, pkgerrors.IsNotFound(err))
		assert.False(t, a.ContainsChild(dune.ID()))
		assert.False(t, b.ContainsChild(dune.ID()))
		assert.Equal(t, []string{a.ID(), b.ID()}, storage.IDs())
	})

	t.Run("deleting a collection keeps its children", func(t *testing.T) {
		dune, nature := newDune(), newNature()
		scifi := media.NewCollection("SciFi")
		scifi.AddChild(dune)
		scifi.AddChild(nature)
		c, _ := newCatalog(t, dune, nature, scifi)

		require.NoError(t, c.Delete(scifi.ID()))

		_, err := c.FindByID(dune.ID())
		assert.NoError(t, err)
		_, err = c.FindByID(nature.ID())
		assert.NoError(t, err)
		assert.Equal(t, 2, c.Len())
	})
}

func TestPersistenceFailureIsSwallowed(t *testing.T) {
	tl := logging.NewTestLogger(t)
	storage := memory.NewStorage()
	c, err := catalogs.New(storage, catalogs.WithLogger(tl.Logger))
	require.NoError(t, err)

	storage.FailSave(errors.New("disk full"))
	dune := newDune()
	require.NoError(t, c.Save(dune))

	got, err := c.FindByID(dune.ID())
	require.NoError(t, err)
	assert.Same(t, dune, got)
	tl.AssertContains(t, "Failed to persist catalog")
	tl.AssertContains(t, "disk full")
}

func TestQueries(t *testing.T) {
	dune := newDune()
	messiah := media.NewBook("Dune Messiah", "frank herbert", date(1969, 10, 1), "Putnam", 256)
	nature := newNature()
	scifi := media.NewCollection("Sci-Fi Shelf", media.WithCreated(date(1965, 12, 24)))
	c, _ := newCatalog(t, dune, messiah, nature, scifi)

	ids := func(items []media.Item) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.ID()
		}
		return out
	}

	t.Run("title", func(t *testing.T) {
		assert.Equal(t, []string{dune.ID(), messiah.ID()}, ids(c.FindByTitle("dUNE")))
		assert.Len(t, c.FindByTitle(""), 4)
		assert.Empty(t, c.FindByTitle("foundation"))
	})

	t.Run("author", func(t *testing.T) {
		books := c.FindByAuthor("HERBERT")
		require.Len(t, books, 2)
		assert.Same(t, dune, books[0])
		assert.Empty(t, c.FindByAuthor("Springer"), "magazines have no author")
	})

	t.Run("year", func(t *testing.T) {
		assert.Equal(t, []string{dune.ID(), scifi.ID()}, ids(c.FindByPublicationYear(1965)))
		assert.Empty(t, c.FindByPublicationYear(1900))
	})

	t.Run("collections", func(t *testing.T) {
		cols := c.Collections()
		require.Len(t, cols, 1)
		assert.Same(t, scifi, cols[0])
	})
}
