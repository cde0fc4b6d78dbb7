package postgres

import (
	"context"

	"github.com/tkaz/blog-api/internal/store"
)

// collectRows runs a query against db, which may be a pool or an open
// transaction, and materializes every row through scan. It always
// returns a non-nil slice on success so callers serialize empty results
// as [] rather than null.
func collectRows[T any](
	ctx context.Context,
	db store.DBTX,
	scan func(row interface{ Scan(dest ...any) error }) (*T, error),
	query string,
	args ...any,
) (items []T, err error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); err == nil {
			err = cerr
		}
	}()

	items = []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
