package ch

import (
	"context"
	"errors"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

type fakeBatch struct {
	driver.Batch
	rows      [][]any
	appendErr error
	sendErr   error
	sent      bool
	aborted   bool
}

func (b *fakeBatch) Append(v ...any) error {
	if b.appendErr != nil {
		return b.appendErr
	}
	b.rows = append(b.rows, v)
	return nil
}

func (b *fakeBatch) Send() error {
	if b.sendErr != nil {
		return b.sendErr
	}
	b.sent = true
	return nil
}

func (b *fakeBatch) Abort() error { b.aborted = true; return nil }

type fakeConn struct {
	batch    *fakeBatch
	prepared string
	execs    []string
	pingErr  error
	closed   bool
}

func (c *fakeConn) Query(context.Context, string, ...any) (driver.Rows, error) {
	return nil, errors.New("no rows in fake")
}

func (c *fakeConn) Exec(_ context.Context, q string, _ ...any) error {
	c.execs = append(c.execs, q)
	return nil
}

func (c *fakeConn) PrepareBatch(_ context.Context, q string, _ ...driver.PrepareBatchOption) (driver.Batch, error) {
	c.prepared = q
	return c.batch, nil
}

func (c *fakeConn) Ping(context.Context) error { return c.pingErr }
func (c *fakeConn) Close() error               { c.closed = true; return nil }

func TestOpen_RejectsEmptyURL(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Fatal("want error for empty url")
	}
}

func TestInsert_SendsBatch(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{batch: &fakeBatch{}}
	c := New(fc)
	err := c.Insert(context.Background(), "trajectory_samples", [][]any{{"a", 1}, {"b", 2}})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if fc.prepared != "INSERT INTO trajectory_samples" {
		t.Fatalf("prepared %q", fc.prepared)
	}
	if len(fc.batch.rows) != 2 || !fc.batch.sent || fc.batch.aborted {
		t.Fatalf("batch state %+v", fc.batch)
	}
}

func TestInsert_EmptyIsNoop(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{}
	if err := New(fc).Insert(context.Background(), "t", nil); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if fc.prepared != "" {
		t.Fatal("empty insert should not prepare a batch")
	}
}

func TestInsert_AbortsOnFailure(t *testing.T) {
	t.Parallel()

	cases := map[string]*fakeBatch{
		"append": {appendErr: errors.New("bad type")},
		"send":   {sendErr: errors.New("conn reset")},
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fc := &fakeConn{batch: b}
			if err := New(fc).Insert(context.Background(), "t", [][]any{{1}}); err == nil {
				t.Fatal("want error")
			}
			if !b.aborted {
				t.Fatal("batch not aborted")
			}
		})
	}
}

func TestExecPingClose(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{pingErr: errors.New("down")}
	c := New(fc)
	if err := c.Exec(context.Background(), "CREATE TABLE x"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if len(fc.execs) != 1 {
		t.Fatalf("execs %v", fc.execs)
	}
	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("ping should surface conn error")
	}
	if err := c.Close(); err != nil || !fc.closed {
		t.Fatalf("close: %v %v", err, fc.closed)
	}

	var nilCH *CH
	if err := nilCH.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}

func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo(" export ", "v1")
	if len(ci.Products) != 5 {
		t.Fatalf("products %d", len(ci.Products))
	}
	if ci.Products[0].Name != "gridiron" || ci.Products[0].Version != "v1" {
		t.Fatalf("first product %+v", ci.Products[0])
	}
	if ci.Products[1].Version != "export" {
		t.Fatalf("role not trimmed: %q", ci.Products[1].Version)
	}
	if ci.Products[2].Name != "build" || ci.Products[2].Version != "dev+none" {
		t.Fatalf("build product %+v", ci.Products[2])
	}
}

func TestShortCommit(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"": "", "abc": "abc", "0123456789abcdef": "0123456"} {
		if got := shortCommit(in); got != want {
			t.Fatalf("shortCommit(%q) = %q, want %q", in, got, want)
		}
	}
}
