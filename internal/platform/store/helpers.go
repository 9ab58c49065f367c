package store

import (
	"context"
	"regexp"

	perr "scorebook/internal/platform/errors"
)

// Scalar queries the first row, first column into T
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	var v T
	if err := q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Querier is anything that returns Rows; both RowQuerier and Clickhouse qualify
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Many maps every row through scan
func Many[T any](ctx context.Context, q Querier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rs, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var out []T
	for rs.Next() {
		item, err := scan(rs)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rs.Err()
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Ident validates a table name (optionally schema qualified) before it is spliced into sql
func Ident(name string) (string, error) {
	if !identRe.MatchString(name) {
		return "", perr.InvalidArgf("invalid table name %q", name)
	}
	return name, nil
}
