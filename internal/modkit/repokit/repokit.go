// Package repokit binds SQL repositories to a connection or a transaction
package repokit

import (
	"context"

	"gridiron/internal/platform/store"
)

type (
	// Queryer is what a bound repository may run statements on
	Queryer = store.RowQuerier

	// TxRunner opens transactions
	TxRunner = store.TxRunner

	// Rows is a query result set
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag reports what a statement changed
	CommandTag = store.CommandTag
)

// Binder produces a repository that runs on q, usually a transaction
type Binder[T any] interface {
	Bind(q Queryer) T
}

// BindFunc adapts a plain function to Binder
type BindFunc[T any] func(Queryer) T

// Bind implements Binder
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds b to q, a nil q is a wiring bug and panics
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: bind on nil Queryer")
	}
	return b.Bind(q)
}

// WithTx runs fn inside one transaction of tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
