package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// CollectionQuery describes a single read against one collection: an optional
// equality filter and one ordering column. No pagination, no joins.
type CollectionQuery struct {
	Collection string
	Columns    []string
	Filter     squirrel.Eq
	OrderBy    string
	Descending bool
}

// ToSQL compiles the query with $n placeholders.
func (q CollectionQuery) ToSQL() (string, []interface{}, error) {
	if q.Collection == "" {
		return "", nil, fmt.Errorf("collection query: missing collection")
	}
	if len(q.Columns) == 0 {
		return "", nil, fmt.Errorf("collection query %s: no columns", q.Collection)
	}

	builder := psql.Select(q.Columns...).From(q.Collection)
	if len(q.Filter) > 0 {
		builder = builder.Where(q.Filter)
	}
	if q.OrderBy != "" {
		direction := "ASC"
		if q.Descending {
			direction = "DESC"
		}
		builder = builder.OrderBy(q.OrderBy + " " + direction)
	}
	return builder.ToSql()
}

// selectAll runs q and maps every row onto T by column name.
// The result is never nil.
func selectAll[T any](ctx context.Context, db DBTX, q CollectionQuery) ([]T, error) {
	query, args, err := q.ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", q.Collection, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", q.Collection, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
