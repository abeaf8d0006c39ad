package pg

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gridiron/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

const dsn = "postgres://u:p@h:5432/db?sslmode=disable"

func TestOpen_BadURL(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "://bad"}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "pg: parse url") {
		t.Fatalf("err = %v", err)
	}
}

func TestOpen_PoolError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("boom")
	})

	_, err := Open(context.Background(), Config{URL: dsn}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v", err)
	}
}

func TestOpen_AppliesConfigThenTune(t *testing.T) {
	testkit.Serial(t)

	var got *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
		got = pc
		return &pgxpool.Pool{}, nil
	})

	p, err := Open(context.Background(), Config{URL: dsn, MaxConns: 7, SlowMs: 250}, nil, func(pc *pgxpool.Config) {
		if pc.MaxConns != 7 {
			t.Errorf("tune saw MaxConns %d", pc.MaxConns)
		}
		pc.MinConns = 2
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got.MaxConns != 7 || got.MinConns != 2 {
		t.Fatalf("pool config max=%d min=%d", got.MaxConns, got.MinConns)
	}
	if p.Slow != 250*time.Millisecond {
		t.Fatalf("Slow = %v", p.Slow)
	}
}

func TestPoolConfig_AppName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, url, app, want string
	}{
		{"applied", dsn, "gridiron-export", "gridiron-export"},
		{"dsn wins", dsn + "&application_name=psql", "gridiron-export", "psql"},
		{"unset", dsn, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pc, err := poolConfig(Config{URL: tc.url, AppName: tc.app})
			if err != nil {
				t.Fatal(err)
			}
			if got := pc.ConnConfig.RuntimeParams["application_name"]; got != tc.want {
				t.Fatalf("application_name = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClose_NilSafe(t *testing.T) {
	t.Parallel()

	var p *PG
	p.Close()
	(&PG{}).Close()
}
