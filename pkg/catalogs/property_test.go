package catalogs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/catalogs"
	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// TestCatalogMatchesModel drives random save, delete and membership
// operations and checks the catalog against a plain map after each one.
func TestCatalogMatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c, err := catalogs.New(nil, catalogs.WithLogger(logging.NewNopLogger()))
		require.NoError(t, err)

		model := map[string]media.Item{}
		ids := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,6}`), 1, 8, rapid.ID[string]).Draw(t, "ids")

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			id := rapid.SampledFrom(ids).Draw(t, fmt.Sprintf("id%d", i))
			switch rapid.IntRange(0, 2).Draw(t, fmt.Sprintf("op%d", i)) {
			case 0:
				var item media.Item
				if rapid.Bool().Draw(t, fmt.Sprintf("col%d", i)) {
					item = media.NewCollection("c-"+id, media.WithID(id))
				} else {
					item = newBookWithID(id)
				}
				require.NoError(t, c.Save(item))
				model[id] = item
			case 1:
				err := c.Delete(id)
				if _, ok := model[id]; ok {
					require.NoError(t, err)
					delete(model, id)
				} else {
					require.True(t, pkgerrors.IsNotFound(err))
				}
			case 2:
				target := rapid.SampledFrom(ids).Draw(t, fmt.Sprintf("target%d", i))
				col, isCol := model[target].(*media.Collection)
				child, exists := model[id]
				if isCol && exists && target != id {
					col.AddChild(child)
				}
			}

			assert.Equal(t, len(model), c.Len())
			for key, want := range model {
				got, err := c.FindByID(key)
				require.NoError(t, err)
				require.Same(t, want, got)
			}
			for _, col := range c.Collections() {
				for _, child := range col.Children() {
					got, err := c.FindByID(child.ID())
					require.NoError(t, err, "collection %s references deleted %s", col.ID(), child.ID())
					require.Same(t, got, child, "collection child is the stored instance")
				}
			}
		}
	})
}

func newBookWithID(id string) *media.Book {
	return media.NewBook("b-"+id, "author", date(2000, 1, 1), "publisher", 100, media.WithID(id))
}
