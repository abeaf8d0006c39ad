// Package store opens the optional archive backends behind small interfaces
package store

import (
	"context"
	"errors"

	"gridiron/internal/platform/logger"
)

// Store holds whichever backends Open enabled, unset ones stay nil
type Store struct {
	// Log is used by the backend clients, zero value writes nothing
	Log logger.Logger

	PG TxRunner
	CH Clickhouse
}

// Row is a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows is a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what a statement changed
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier runs SQL statements
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is a RowQuerier that can also scope statements to one transaction
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the columnar seam
// Insert takes [][]any rows in table column order and sends them as one batch
type Clickhouse interface {
	Insert(ctx context.Context, table string, data any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Option adjusts a Store before backends open
type Option func(*Store)

// WithLogger sets the logger backend clients use
func WithLogger(l logger.Logger) Option { return func(s *Store) { s.Log = l } }

// Open connects every backend cfg enables and waits until each answers a ping
// on error nothing stays open
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		o(s)
	}

	if cfg.PG.Enabled {
		pg, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.PG = pg
	}
	if cfg.CH.Enabled {
		ch, err := openCH(ctx, cfg, s)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.CH = ch
	}
	return s, nil
}

// Enabled reports which backends are open
func (s *Store) Enabled() (pg, ch bool) {
	if s == nil {
		return false, false
	}
	return s.PG != nil, s.CH != nil
}

// Close closes every open backend and joins their errors
func (s *Store) Close(_ context.Context) error {
	var errs []error
	if s.CH != nil {
		errs = append(errs, s.CH.Close())
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
