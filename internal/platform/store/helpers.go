package store

import (
	"context"

	perr "gridiron/internal/platform/errors"
)

// ExecOne runs a write that must touch exactly one row, upserts included
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != 1 {
		return perr.Newf(perr.ErrorCodeDB, "store: %d rows affected, want 1", n)
	}
	return nil
}

// Scalar reads the first column of the first row into a T
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (T, error) {
	var v T
	if err := q.QueryRow(ctx, sql, args...).Scan(&v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
