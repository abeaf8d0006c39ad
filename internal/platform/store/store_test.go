package store

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gridiron/internal/platform/config"

	"github.com/rs/zerolog"
)

func TestOpen_NothingEnabled(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), Config{}, WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if pgOn, chOn := s.Enabled(); pgOn || chOn {
		t.Fatalf("enabled pg=%v ch=%v", pgOn, chOn)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpen_BadURLs(t *testing.T) {
	t.Parallel()

	cases := map[string]Config{
		"pg": {PG: PGConfig{Enabled: true, URL: "://bad"}},
		"ch": {CH: CHConfig{Enabled: true, URL: "://bad"}},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s, err := Open(context.Background(), cfg)
			if err == nil || s != nil {
				t.Fatalf("want error and nil store, got %v %v", s, err)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://u:p@db:5432/gridiron")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "9")
	t.Setenv("SERVICE_CLICKHOUSE_DBURL", "")

	cfg := FromConfig(config.New(), "gridiron", "export")
	if !cfg.PG.Enabled || cfg.PG.MaxConns != 9 || cfg.PG.URL != "postgres://u:p@db:5432/gridiron" {
		t.Fatalf("pg %+v", cfg.PG)
	}
	if cfg.CH.Enabled {
		t.Fatalf("ch should be disabled without a url: %+v", cfg.CH)
	}
	if cfg.CH.ClientName != "gridiron" || cfg.CH.ClientTag != "export" || cfg.AppName != "gridiron" {
		t.Fatalf("names %+v", cfg)
	}
	if cfg.PG.PingTimeout != 3*time.Second || cfg.PG.ConnectRetries != 20 {
		t.Fatalf("defaults %+v", cfg.PG)
	}
}

func TestPingWithBackoff(t *testing.T) {
	t.Parallel()

	t.Run("recovers", func(t *testing.T) {
		t.Parallel()
		calls := 0
		err := pingWithBackoff(context.Background(), 3, time.Second, func(context.Context) error {
			calls++
			if calls < 2 {
				return errors.New("not yet")
			}
			return nil
		})
		if err != nil || calls != 2 {
			t.Fatalf("err=%v calls=%d", err, calls)
		}
	})

	t.Run("gives up", func(t *testing.T) {
		t.Parallel()
		down := errors.New("down")
		calls := 0
		err := pingWithBackoff(context.Background(), 2, time.Second, func(context.Context) error {
			calls++
			return down
		})
		if !errors.Is(err, down) || calls != 2 {
			t.Fatalf("err=%v calls=%d", err, calls)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := pingWithBackoff(ctx, 5, time.Second, func(c context.Context) error { return c.Err() })
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want canceled, got %v", err)
		}
	})
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	s := &Store{}
	WithLogger(zerolog.New(&buf))(s)
	s.Log.Info().Msg("store: clickhouse ready")
	if !bytes.Contains(buf.Bytes(), []byte("clickhouse ready")) {
		t.Fatalf("log = %q", buf.String())
	}
}

func TestColumnar_InsertShape(t *testing.T) {
	t.Parallel()

	var a columnar
	if err := a.Insert(context.Background(), "trajectory_samples", nil); err != nil {
		t.Fatalf("nil rows: %v", err)
	}
	err := a.Insert(context.Background(), "trajectory_samples", []string{"x"})
	if err == nil || !strings.Contains(err.Error(), "want [][]any") {
		t.Fatalf("err = %v", err)
	}
}
