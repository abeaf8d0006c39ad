package store

import (
	"context"
	"fmt"

	"gridiron/internal/platform/store/ch"
)

// columnar exposes *ch.CH through Clickhouse
type columnar struct{ c *ch.CH }

var _ Clickhouse = columnar{}

func (a columnar) Insert(ctx context.Context, table string, data any) error {
	switch rows := data.(type) {
	case [][]any:
		return a.c.Insert(ctx, table, rows)
	case nil:
		return nil
	default:
		return fmt.Errorf("store: insert %s: rows are %T, want [][]any", table, data)
	}
}

func (a columnar) Exec(ctx context.Context, sql string, args ...any) error {
	return a.c.Exec(ctx, sql, args...)
}

func (a columnar) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.c.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r}, nil
}

func (a columnar) Ping(ctx context.Context) error { return a.c.Ping(ctx) }

func (a columnar) Close() error { return a.c.Close() }

// chRows drops the error from driver.Rows.Close
type chRows struct{ ch.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }
