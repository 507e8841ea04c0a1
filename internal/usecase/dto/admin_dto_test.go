package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_ToListParams(t *testing.T) {
	t.Run("zero value gets the shared defaults", func(t *testing.T) {
		p := ListQuery{}.ToListParams()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.Limit)
		assert.Equal(t, "asc", p.SortOrder)
	})

	t.Run("limit is capped", func(t *testing.T) {
		p := ListQuery{Limit: 5000}.ToListParams()
		assert.Equal(t, 100, p.Limit)
	})

	t.Run("explicit values pass through", func(t *testing.T) {
		active := true
		p := ListQuery{
			Page:      3,
			Limit:     50,
			SortBy:    "name",
			SortOrder: "desc",
			Search:    "central",
			IsActive:  &active,
		}.ToListParams()
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 50, p.Limit)
		assert.Equal(t, "name", p.SortBy)
		assert.Equal(t, "desc", p.SortOrder)
		assert.Equal(t, "central", p.Search)
		assert.True(t, *p.IsActive)
	})

	t.Run("offset follows the page", func(t *testing.T) {
		p := ListQuery{Page: 4, Limit: 25}.ToListParams()
		assert.Equal(t, 75, p.Offset())
	})
}
