// Package pg opens the pgxpool behind the plays archive
package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is the pool shape, zero values keep pgxpool defaults
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int

	// AppName becomes application_name unless the DSN already names one
	AppName string
}

// PG owns the pool plus what the store adapter needs to trace statements
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	Slow   time.Duration
}

var newPool = pgxpool.NewWithConfig

// Open builds the pool, tune runs last and may override anything
// the pool dials lazily so Open succeeds without a reachable server
func Open(ctx context.Context, cfg Config, tracer QueryTracer, tune func(*pgxpool.Config)) (*PG, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}
	if tune != nil {
		tune(pc)
	}
	pool, err := newPool(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("pg: pool: %w", err)
	}
	return &PG{Pool: pool, Tracer: tracer, Slow: time.Duration(cfg.SlowMs) * time.Millisecond}, nil
}

func poolConfig(cfg Config) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pg: parse url: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	params := pc.ConnConfig.RuntimeParams
	if params == nil {
		params = map[string]string{}
		pc.ConnConfig.RuntimeParams = params
	}
	if _, ok := params["application_name"]; !ok && cfg.AppName != "" {
		params["application_name"] = cfg.AppName
	}
	return pc, nil
}

// Close closes the pool, safe on nil
func (p *PG) Close() {
	if p == nil || p.Pool == nil {
		return
	}
	p.Pool.Close()
}
