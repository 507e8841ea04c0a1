package postgres

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/transit-backoffice/internal/domain"
)

// listBuilder assembles the filtered, sorted, paginated SELECT and its
// COUNT twin shared by every admin list repository. Conditions use `?`
// placeholders and are rebound to $n at build time. Sort keys are
// whitelisted per entity so client input never reaches the ORDER BY
// clause verbatim.
type listBuilder struct {
	selectBase  string
	countBase   string
	activeCol   string
	defaultSort string
	sortColumns map[string]string
	searchCols  []string
	conds       []string
	args        []interface{}
}

func newListBuilder(selectBase, countBase string) *listBuilder {
	return &listBuilder{
		selectBase: selectBase,
		countBase:  countBase,
	}
}

// Where adds a raw condition with `?` placeholders.
func (b *listBuilder) Where(cond string, args ...interface{}) *listBuilder {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
	return b
}

// ActiveColumn names the column the isActive filter binds to.
func (b *listBuilder) ActiveColumn(col string) *listBuilder {
	b.activeCol = col
	return b
}

// Sortable registers the sort key whitelist and the fallback ordering.
func (b *listBuilder) Sortable(defaultSort string, cols map[string]string) *listBuilder {
	b.defaultSort = defaultSort
	b.sortColumns = cols
	return b
}

// Searchable registers the columns free-text search matches against.
func (b *listBuilder) Searchable(cols ...string) *listBuilder {
	b.searchCols = cols
	return b
}

// Build produces the page query and the count query with their bound
// args, both rebound to PostgreSQL placeholders.
func (b *listBuilder) Build(p domain.ListParams) (query, countQuery string, queryArgs, countArgs []interface{}) {
	conds := append([]string{}, b.conds...)
	args := append([]interface{}{}, b.args...)

	if b.activeCol != "" && p.IsActive != nil {
		conds = append(conds, fmt.Sprintf("%s = ?", b.activeCol))
		args = append(args, *p.IsActive)
	}

	if p.Search != "" && len(b.searchCols) > 0 {
		like := "%" + p.Search + "%"
		parts := make([]string, 0, len(b.searchCols))
		for _, col := range b.searchCols {
			parts = append(parts, fmt.Sprintf("%s ILIKE ?", col))
			args = append(args, like)
		}
		conds = append(conds, "("+strings.Join(parts, " OR ")+")")
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	orderCol := b.defaultSort
	if col, ok := b.sortColumns[p.SortBy]; ok {
		orderCol = col
	}
	dir := "ASC"
	if strings.EqualFold(p.SortOrder, "desc") {
		dir = "DESC"
	}

	countQuery = sqlx.Rebind(sqlx.DOLLAR, b.countBase+where)
	countArgs = args

	query = sqlx.Rebind(sqlx.DOLLAR, fmt.Sprintf(
		"%s%s ORDER BY %s %s LIMIT ? OFFSET ?",
		b.selectBase, where, orderCol, dir,
	))
	queryArgs = append(append([]interface{}{}, args...), p.Limit, p.Offset())

	return query, countQuery, queryArgs, countArgs
}
