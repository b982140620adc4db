package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		want        Params
	}{
		{"defaults on zero values", 0, 0, Params{Page: 1, Limit: 20}},
		{"defaults on negative values", -3, -1, Params{Page: 1, Limit: 20}},
		{"passes valid values through", 2, 50, Params{Page: 2, Limit: 50}},
		{"caps limit", 1, 500, Params{Page: 1, Limit: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.page, tt.limit))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	t.Run("middle page", func(t *testing.T) {
		res := Paginate(items, Params{Page: 2, Limit: 20})
		assert.Len(t, res.Items, 20)
		assert.Equal(t, 20, res.Items[0])
		assert.Equal(t, 3, res.Meta.TotalPages)
		assert.True(t, res.Meta.HasNextPage)
		assert.True(t, res.Meta.HasPrevPage)
	})

	t.Run("last partial page", func(t *testing.T) {
		res := Paginate(items, Params{Page: 3, Limit: 20})
		assert.Len(t, res.Items, 5)
		assert.Equal(t, 45, res.Meta.Total)
		assert.False(t, res.Meta.HasNextPage)
		assert.True(t, res.Meta.HasPrevPage)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		res := Paginate(items, Params{Page: 4, Limit: 20})
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.Equal(t, 3, res.Meta.TotalPages)
	})

	t.Run("empty collection has zero pages", func(t *testing.T) {
		res := Paginate([]int{}, Params{Page: 1, Limit: 20})
		assert.Empty(t, res.Items)
		assert.Equal(t, 0, res.Meta.TotalPages)
		assert.False(t, res.Meta.HasNextPage)
		assert.False(t, res.Meta.HasPrevPage)
	})
}
