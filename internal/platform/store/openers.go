package store

import (
	"context"
	"fmt"
	"time"

	chx "piptrade/internal/platform/store/ch"
	"piptrade/internal/platform/store/pg"
)

const (
	defaultConnectAttempts = 20
	defaultPingTimeout     = 3 * time.Second

	backoffStart = 150 * time.Millisecond
	backoffMax   = 2 * time.Second
)

// openPG builds the pool and hands it out only after it answers a ping
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	pc := pg.Config{
		URL:              cfg.PG.URL,
		MaxConns:         cfg.PG.MaxConns,
		Slow:             cfg.PG.SlowQuery,
		AppName:          cfg.AppName,
		StatementTimeout: cfg.PG.StatementTimeout,
	}
	if cfg.PG.LogSQL {
		pc.Tracer = pg.Tracer(s.Log)
	}
	p, err := pg.Open(ctx, pc)
	if err != nil {
		return nil, err
	}
	if err := awaitPing(ctx, cfg.Connect, p.Pool.Ping); err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}
	s.Log.Info().Int32("max_conns", cfg.PG.MaxConns).Msg("postgres pool ready")
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config, s *Store) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:          cfg.CH.URL,
		ClientName:   cfg.CH.ClientName,
		ClientTag:    cfg.CH.ClientTag,
		MaxExecution: cfg.CH.MaxExecution,
	})
	if err != nil {
		return nil, err
	}
	if err := awaitPing(ctx, cfg.Connect, c.Ping); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("clickhouse: %w", err)
	}
	s.Log.Info().Msg("clickhouse connection ready")
	return newCHAdapter(c), nil
}

// awaitPing retries ping with doubling backoff until it answers, ctx ends
// or the policy's attempts are spent
func awaitPing(ctx context.Context, pol ConnectPolicy, ping func(context.Context) error) error {
	pol = pol.withDefaults()
	wait := backoffStart
	var err error
	for attempt := 1; ; attempt++ {
		pctx, cancel := context.WithTimeout(ctx, pol.PingTimeout)
		err = ping(pctx)
		cancel()
		switch {
		case err == nil:
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case attempt >= pol.Attempts:
			return fmt.Errorf("ping failed after %d attempts: %w", attempt, err)
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		wait = min(wait*2, backoffMax)
	}
}
