// Package pg opens the pgx pool the record store runs on
package pg

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config is what Open needs to build a pool
type Config struct {
	URL      string
	MaxConns int32

	// Slow marks statements at or above it, zero marks none
	Slow time.Duration

	AppName          string
	StatementTimeout time.Duration // session default, 0 keeps the server's

	Tracer QueryTracer
	Tune   func(*pgxpool.Config)
}

// PG is an open pool plus its tracing settings
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	Slow   time.Duration
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL and builds the pool without pinging it
func Open(ctx context.Context, cfg Config) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	params := pcfg.ConnConfig.RuntimeParams
	if cfg.AppName != "" {
		params["application_name"] = cfg.AppName
	}
	if cfg.StatementTimeout > 0 {
		params["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}
	if cfg.Tune != nil {
		cfg.Tune(pcfg)
	}

	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: cfg.Tracer, Slow: cfg.Slow}, nil
}

// IsSlow reports whether d crosses the slow threshold
func (p *PG) IsSlow(d time.Duration) bool { return p.Slow > 0 && d >= p.Slow }

// Close is safe on a nil PG or pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
