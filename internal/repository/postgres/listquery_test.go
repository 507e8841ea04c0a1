package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transit-backoffice/internal/domain"
)

func newTestBuilder() *listBuilder {
	return newListBuilder(
		"SELECT z.id FROM zones z",
		"SELECT COUNT(*) FROM zones z",
	).
		Where("z.deleted_at IS NULL").
		ActiveColumn("z.is_active").
		Sortable("z.created_at", map[string]string{
			"createdAt": "z.created_at",
			"name":      "n.en",
		}).
		Searchable("n.en", "n.ar", "n.ckb")
}

func TestListBuilder_Build(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		query, countQuery, queryArgs, countArgs := newTestBuilder().Build(domain.ListParams{
			Page:      1,
			Limit:     20,
			SortOrder: "asc",
		})

		assert.Equal(t,
			"SELECT z.id FROM zones z WHERE z.deleted_at IS NULL ORDER BY z.created_at ASC LIMIT $1 OFFSET $2",
			query)
		assert.Equal(t, []interface{}{20, 0}, queryArgs)
		assert.Equal(t, "SELECT COUNT(*) FROM zones z WHERE z.deleted_at IS NULL", countQuery)
		assert.Empty(t, countArgs)
	})

	t.Run("active filter and search bind in order", func(t *testing.T) {
		active := true
		query, countQuery, queryArgs, countArgs := newTestBuilder().Build(domain.ListParams{
			Page:      2,
			Limit:     10,
			Search:    "central",
			IsActive:  &active,
			SortOrder: "asc",
		})

		assert.Equal(t,
			"SELECT z.id FROM zones z"+
				" WHERE z.deleted_at IS NULL AND z.is_active = $1"+
				" AND (n.en ILIKE $2 OR n.ar ILIKE $3 OR n.ckb ILIKE $4)"+
				" ORDER BY z.created_at ASC LIMIT $5 OFFSET $6",
			query)
		assert.Equal(t, []interface{}{true, "%central%", "%central%", "%central%", 10, 10}, queryArgs)

		assert.Equal(t,
			"SELECT COUNT(*) FROM zones z"+
				" WHERE z.deleted_at IS NULL AND z.is_active = $1"+
				" AND (n.en ILIKE $2 OR n.ar ILIKE $3 OR n.ckb ILIKE $4)",
			countQuery)
		assert.Equal(t, []interface{}{true, "%central%", "%central%", "%central%"}, countArgs)
	})

	t.Run("whitelisted sort key is honored", func(t *testing.T) {
		query, _, _, _ := newTestBuilder().Build(domain.ListParams{
			Page:      1,
			Limit:     20,
			SortBy:    "name",
			SortOrder: "desc",
		})
		assert.Contains(t, query, "ORDER BY n.en DESC")
	})

	t.Run("unknown sort key falls back to the default", func(t *testing.T) {
		query, _, _, _ := newTestBuilder().Build(domain.ListParams{
			Page:      1,
			Limit:     20,
			SortBy:    "id; DROP TABLE zones",
			SortOrder: "asc",
		})
		assert.Contains(t, query, "ORDER BY z.created_at ASC")
		assert.NotContains(t, query, "DROP TABLE")
	})

	t.Run("sort direction only ever emits ASC or DESC", func(t *testing.T) {
		query, _, _, _ := newTestBuilder().Build(domain.ListParams{
			Page:      1,
			Limit:     20,
			SortOrder: "desc; DELETE FROM zones",
		})
		assert.Contains(t, query, "ORDER BY z.created_at ASC")
	})
}
