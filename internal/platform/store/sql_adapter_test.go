package store

import (
	"context"
	"errors"
	"testing"

	"gridiron/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeTx overrides the pgx.Tx calls traced makes, anything else panics on the nil embed
type fakeTx struct {
	pgx.Tx
	execErr error
	execs   []string
	scanned int
}

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.execErr != nil {
		return pgconn.NewCommandTag(""), f.execErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row { return fakeRow{n: f.scanned} }

type fakeRow struct{ n int }

func (r fakeRow) Scan(dest ...any) error {
	p, ok := dest[0].(*int)
	if !ok {
		return errors.New("want *int")
	}
	*p = r.n
	return nil
}

type captureTracer struct{ evs []pg.QueryEvent }

func (c *captureTracer) OnQuery(_ context.Context, ev pg.QueryEvent) { c.evs = append(c.evs, ev) }

func TestTag(t *testing.T) {
	t.Parallel()

	tg := tag{pgconn.NewCommandTag("UPDATE 3")}
	if tg.String() != "UPDATE 3" || tg.RowsAffected() != 3 {
		t.Fatalf("tag %q %d", tg.String(), tg.RowsAffected())
	}
}

func TestTraced_TracesExecAndQueryRow(t *testing.T) {
	t.Parallel()

	tr := &captureTracer{}
	fx := &fakeTx{scanned: 12}
	q := traced{db: fx, tracer: tr, slowUS: 0}

	ct, err := q.Exec(context.Background(), "insert into plays values ($1)", "g1")
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if ct.RowsAffected() != 1 {
		t.Fatalf("rows affected %d", ct.RowsAffected())
	}

	var n int
	if err := q.QueryRow(context.Background(), "select count(*) from plays").Scan(&n); err != nil || n != 12 {
		t.Fatalf("QueryRow: n=%d err=%v", n, err)
	}

	if len(tr.evs) != 2 {
		t.Fatalf("want 2 trace events, got %d", len(tr.evs))
	}
	if tr.evs[0].SQL != "insert into plays values ($1)" || len(tr.evs[0].Args) != 1 {
		t.Fatalf("exec event %+v", tr.evs[0])
	}
	// slowUS 0 marks everything slow
	if !tr.evs[0].Slow || !tr.evs[1].Slow {
		t.Fatalf("slow flags %v %v", tr.evs[0].Slow, tr.evs[1].Slow)
	}
}

func TestTraced_ErrorReachesTracer(t *testing.T) {
	t.Parallel()

	tr := &captureTracer{}
	boom := errors.New("boom")
	q := traced{db: &fakeTx{execErr: boom}, tracer: tr, slowUS: -1}

	if _, err := q.Exec(context.Background(), "delete from plays"); !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
	if len(tr.evs) != 1 || !errors.Is(tr.evs[0].Err, boom) || tr.evs[0].Slow {
		t.Fatalf("event %+v", tr.evs)
	}
}

func TestTraced_NoTracer(t *testing.T) {
	t.Parallel()

	fx := &fakeTx{}
	q := traced{db: fx}
	if _, err := q.Exec(context.Background(), "select 1"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if len(fx.execs) != 1 {
		t.Fatalf("execs %v", fx.execs)
	}
}
