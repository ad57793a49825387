package persistence_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/persistence"
	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleItems returns a book, a magazine and a collection holding both,
// with the book already lent out.
func sampleItems() []media.Item {
	dune := media.NewBook("Dune", "Frank Herbert", date(1965, 8, 1), "Chilton", 412, media.WithID("dune"))
	nature := media.NewMagazine("Nature", date(2024, 3, 7), "Springer", 8001,
		media.WithID("nature"), media.WithISSN("0028-0836"))
	scifi := media.NewCollection("SciFi", media.WithID("scifi"), media.WithCreated(date(2025, 1, 2)))
	scifi.AddChild(dune)
	scifi.AddChild(nature)
	dune.SetAvailable(false)
	return []media.Item{dune, nature, scifi}
}

func assertSampleRestored(t *testing.T, items []media.Item) {
	t.Helper()
	require.Len(t, items, 3)

	dune, ok := items[0].(*media.Book)
	require.True(t, ok)
	assert.Equal(t, "dune", dune.ID())
	assert.Equal(t, "Frank Herbert", dune.Author())
	assert.Equal(t, 412, dune.Pages())
	assert.False(t, dune.Available())
	assert.Equal(t, date(1965, 8, 1), dune.PublicationDate())

	nature, ok := items[1].(*media.Magazine)
	require.True(t, ok)
	assert.Equal(t, "0028-0836", nature.ISSN())
	assert.Equal(t, 8001, nature.Issue())
	assert.True(t, nature.Available())

	scifi, ok := items[2].(*media.Collection)
	require.True(t, ok)
	assert.Equal(t, date(2025, 1, 2), scifi.PublicationDate())
	require.Equal(t, 2, scifi.Len())
	assert.Same(t, dune, scifi.Children()[0], "children are relinked to the loaded instances")
	assert.Same(t, nature, scifi.Children()[1])
}

func TestRecords(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		records := persistence.ToRecords(sampleItems())
		require.Len(t, records, 3)
		assert.Equal(t, []string{"dune", "nature"}, records[2].Children)
		assert.Equal(t, "1965-08-01", records[0].PublicationDate)

		items, err := persistence.FromRecords(records, logging.NewNopLogger())
		require.NoError(t, err)
		assertSampleRestored(t, items)
	})

	t.Run("dangling child is dropped", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		records := []persistence.Record{
			{ID: "c", Kind: "collection", Title: "C", PublicationDate: "2025-01-01", Children: []string{"ghost"}},
		}
		items, err := persistence.FromRecords(records, tl.Logger)
		require.NoError(t, err)
		assert.Equal(t, 0, items[0].(*media.Collection).Len())
		tl.AssertContains(t, "ghost")
	})

	t.Run("invalid records", func(t *testing.T) {
		_, err := persistence.FromRecords([]persistence.Record{{Kind: "book"}}, nil)
		assert.True(t, pkgerrors.IsValidationError(err))

		_, err = persistence.FromRecords([]persistence.Record{{ID: "x", Kind: "dvd"}}, nil)
		assert.True(t, pkgerrors.IsValidationError(err))

		_, err = persistence.FromRecords([]persistence.Record{{ID: "x", Kind: "book", PublicationDate: "01/01/2020"}}, nil)
		var perr *pkgerrors.ParseError
		assert.ErrorAs(t, err, &perr)
	})
}

func TestYAMLStorage(t *testing.T) {
	t.Run("missing file is empty", func(t *testing.T) {
		s := persistence.NewYAMLStorage(filepath.Join(t.TempDir(), "none.yaml"), logging.NewNopLogger())
		items, err := s.LoadAll()
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("save and load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "catalog.yaml")
		s := persistence.NewYAMLStorage(path, logging.NewNopLogger())
		require.NoError(t, s.SaveAll(sampleItems()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "version: 1")
		assert.Contains(t, string(data), "title: Dune")

		items, err := persistence.NewYAMLStorage(path, logging.NewNopLogger()).LoadAll()
		require.NoError(t, err)
		assertSampleRestored(t, items)
		assert.NoError(t, s.Close())
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("items: [\n  - {id: "), 0o644))

		_, err := persistence.NewYAMLStorage(path, logging.NewNopLogger()).LoadAll()
		require.Error(t, err)
		assert.True(t, pkgerrors.IsStorageError(err))
	})

	t.Run("unwritable directory", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		s := persistence.NewYAMLStorage(filepath.Join(blocker, "catalog.yaml"), logging.NewNopLogger())
		err := s.SaveAll(sampleItems())
		assert.True(t, pkgerrors.IsStorageError(err))
	})
}

func TestBoltStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := persistence.OpenBoltStorage(path, logging.NewNopLogger())
	require.NoError(t, err)

	items, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, s.SaveAll(sampleItems()))
	require.NoError(t, s.Close())

	s, err = persistence.OpenBoltStorage(path, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	items, err = s.LoadAll()
	require.NoError(t, err)
	assertSampleRestored(t, items)

	t.Run("resave replaces the set", func(t *testing.T) {
		require.NoError(t, s.SaveAll(items[:1]))
		again, err := s.LoadAll()
		require.NoError(t, err)
		require.Len(t, again, 1)
		assert.Equal(t, "dune", again[0].ID())
	})
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"", "yaml", "BOLT", "memory"} {
		t.Run("backend "+name, func(t *testing.T) {
			backend, err := persistence.ParseBackend(name)
			require.NoError(t, err)

			s, err := persistence.Open(backend, filepath.Join(dir, string(backend)), logging.NewNopLogger())
			require.NoError(t, err)
			require.NoError(t, s.SaveAll(sampleItems()))
			items, err := s.LoadAll()
			require.NoError(t, err)
			assert.Len(t, items, 3)
			assert.NoError(t, s.Close())
		})
	}

	_, err := persistence.ParseBackend("postgres")
	var cfgErr *pkgerrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
