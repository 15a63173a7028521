package store

import (
	"context"
	"errors"
	"time"

	"piptrade/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is what *pgxpool.Pool and pgx.Tx have in common
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

var since = time.Since

// stmts runs statements on q, reporting each to tracer when one is set
type stmts struct {
	q      pgxQuerier
	tracer pg.QueryTracer
	slow   time.Duration
}

func (s stmts) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	done := s.observe(ctx, sql, args)
	ct, err := s.q.Exec(ctx, sql, args...)
	done(err)
	return ct, err
}

// Query reports once the result set is open, scanning is not timed
func (s stmts) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	done := s.observe(ctx, sql, args)
	rs, err := s.q.Query(ctx, sql, args...)
	done(err)
	if err != nil {
		return nil, err
	}
	return pgxRows{rs}, nil
}

// QueryRow reports when the row is scanned, that is when pgx surfaces errors
func (s stmts) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return scanHook{r: s.q.QueryRow(ctx, sql, args...), done: s.observe(ctx, sql, args)}
}

func (s stmts) observe(ctx context.Context, sql string, args []any) func(error) {
	if s.tracer == nil {
		return func(error) {}
	}
	start := time.Now()
	return func(err error) {
		d := since(start)
		s.tracer.OnQuery(ctx, pg.QueryEvent{
			SQL:     sql,
			Args:    args,
			Elapsed: d,
			Err:     err,
			Slow:    s.slow > 0 && d >= s.slow,
		})
	}
}

// pgAdapter is the TxRunner and Pinger over an open pool
type pgAdapter struct {
	stmts
	begin txBeginner
	p     *pg.PG
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{
		stmts: stmts{q: p.Pool, tracer: p.Tracer, slow: p.Slow},
		begin: p.Pool,
		p:     p,
	}
}

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.p == nil || a.p.Pool == nil {
		return errors.New("pg: pool not open")
	}
	return a.p.Pool.Ping(ctx)
}

func (a *pgAdapter) Close() error {
	a.p.Close()
	return nil
}

func (a *pgAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.begin.Begin(ctx)
	if err != nil {
		return err
	}
	inner := a.stmts
	inner.q = tx
	if err := fn(inner); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

type scanHook struct {
	r    pgx.Row
	done func(error)
}

func (h scanHook) Scan(dst ...any) error {
	err := h.r.Scan(dst...)
	h.done(err)
	return err
}

type pgxRows struct{ pgx.Rows }

func (r pgxRows) Columns() []string {
	fds := r.FieldDescriptions()
	names := make([]string, 0, len(fds))
	for _, fd := range fds {
		names = append(names, fd.Name)
	}
	return names
}
