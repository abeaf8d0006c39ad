package modkit

import (
	"testing"

	"gridiron/internal/modkit/repokit"
	"gridiron/internal/platform/store"
)

func TestDeps_OptionalStores(t *testing.T) {
	var d Deps
	if d.PG != nil || d.CH != nil {
		t.Fatal("zero Deps should leave both stores unset")
	}
	var _ repokit.TxRunner = d.PG
	var _ store.Clickhouse = d.CH
}
