package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmsdemo/wms/pkg/model"
	"github.com/wmsdemo/wms/pkg/port"
)

func WithTestIndex(t *testing.T, fn func(ctx context.Context, si *Index)) {
	si, err := NewIndex("test")
	require.NoError(t, err)
	defer si.Close()
	fn(context.Background(), si)
}

func TestIndexSearch(t *testing.T) {
	WithTestIndex(t, func(ctx context.Context, si *Index) {
		require.NoError(t, si.Index(1, model.User{ID: 1, Name: "John Doe", Role: "Warehouse Manager", Department: "Operations"}))
		require.NoError(t, si.Index(2, model.User{ID: 2, Name: "Jane Smith", Role: "Picker", Department: "Fulfillment"}))
		require.NoError(t, si.Index(3, model.User{ID: 3, Name: "Mike Johnson", Role: "Forklift Operator", Department: "Operations"}))

		ids, err := si.Search(ctx, "operations")
		assert.NoError(t, err)
		assert.ElementsMatch(t, []int{1, 3}, ids)

		ids, err = si.Search(ctx, "picker")
		assert.NoError(t, err)
		assert.Equal(t, []int{2}, ids)

		require.NoError(t, si.Delete(3))
		ids, err = si.Search(ctx, "operations")
		assert.NoError(t, err)
		assert.Equal(t, []int{1}, ids)
	})
}

func TestIndexSearchEmpty(t *testing.T) {
	WithTestIndex(t, func(ctx context.Context, si *Index) {
		ids, err := si.Search(ctx, "anything")
		assert.NoError(t, err)
		assert.Empty(t, ids)

		ids, err = si.Search(ctx, "  ")
		assert.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestIndexSearchInvalidQuery(t *testing.T) {
	WithTestIndex(t, func(ctx context.Context, si *Index) {
		// rejected even before anything is indexed
		_, err := si.Search(ctx, `"unterminated`)
		assert.ErrorIs(t, err, port.ErrInvalidQuery)

		require.NoError(t, si.Index(1, model.User{ID: 1, Name: "John Doe"}))
		for _, q := range []string{"name:", "/[/", "name:>", "+-"} {
			_, err = si.Search(ctx, q)
			assert.ErrorIs(t, err, port.ErrInvalidQuery, q)
		}
	})
}
