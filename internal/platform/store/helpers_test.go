package store

import (
	"context"
	"errors"
	"testing"

	perr "gridiron/internal/platform/errors"
)

type fakeTag int64

func (t fakeTag) String() string      { return "INSERT" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type fakeQuerier struct {
	tag fakeTag
	row Row
	err error
}

func (f *fakeQuerier) Exec(context.Context, string, ...any) (CommandTag, error) {
	return f.tag, f.err
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (Rows, error) {
	return nil, f.err
}

func (f *fakeQuerier) QueryRow(context.Context, string, ...any) Row { return f.row }

type intRow struct {
	n   int
	err error
}

func (r intRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.n
	return nil
}

func TestExecOne(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if err := ExecOne(ctx, &fakeQuerier{tag: 1}, "update"); err != nil {
		t.Fatalf("one row: %v", err)
	}
	for _, n := range []fakeTag{0, 2} {
		if err := ExecOne(ctx, &fakeQuerier{tag: n}, "update"); !perr.IsCode(err, perr.ErrorCodeDB) {
			t.Fatalf("%d rows should fail", n)
		}
	}
	boom := errors.New("boom")
	if err := ExecOne(ctx, &fakeQuerier{err: boom}, "update"); !errors.Is(err, boom) {
		t.Fatalf("exec error not propagated: %v", err)
	}
}

func TestScalar(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	n, err := Scalar[int](ctx, &fakeQuerier{row: intRow{n: 7}}, "select count(*)")
	if err != nil || n != 7 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	n, err = Scalar[int](ctx, &fakeQuerier{row: intRow{n: 7, err: errors.New("scan")}}, "select")
	if err == nil || n != 0 {
		t.Fatalf("want zero and error, got %d %v", n, err)
	}
}
