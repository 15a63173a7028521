package repo

import (
	"context"
	"time"

	"piptrade/internal/modkit/repokit"
	"piptrade/internal/platform/store"
)

const (
	pgSchema = `
create table if not exists records (
	id         uuid primary key,
	seq        bigserial not null,
	doc        jsonb not null,
	created_at timestamptz not null default now()
)`
	pgInsert = `insert into records (id, doc) values ($1::uuid, $2::jsonb)`
	pgAll    = `select id::text, doc::text from records order by seq asc`
	pgCount  = `select count(1) from records`
)

// PG stores records in a jsonb column
type PG struct {
	db     repokit.TxRunner
	reads  repokit.TxRunner
	binder repokit.Binder[*queries]
}

// queries is bound to either the pool or a tx
type queries struct{ q repokit.Queryer }

// NewPG binds the repo to db, reads run in a read only tx with statement_timeout pinned to budget
func NewPG(db repokit.TxRunner, budget time.Duration) *PG {
	return &PG{
		db:     db,
		reads:  repokit.WithBeginHooks(db, repokit.ReadOnly, repokit.StatementTimeout(budget)),
		binder: repokit.BindFunc[*queries](func(q repokit.Queryer) *queries { return &queries{q: q} }),
	}
}

// EnsureSchema implements Repo
func (p *PG) EnsureSchema(ctx context.Context) error {
	_, err := store.Exec(ctx, p.db, pgSchema)
	return err
}

// Insert implements Repo, one tx so a failing row leaves nothing behind
func (p *PG) Insert(ctx context.Context, docs []Doc) error {
	if len(docs) == 0 {
		return nil
	}
	return repokit.WithTx(ctx, p.db, func(q repokit.Queryer) error {
		return repokit.MustBind(p.binder, q).insert(ctx, docs)
	})
}

// All implements Repo
func (p *PG) All(ctx context.Context) ([]Doc, error) {
	var out []Doc
	err := repokit.WithTx(ctx, p.reads, func(q repokit.Queryer) error {
		var err error
		out, err = store.Many(ctx, q, scanDoc, pgAll)
		return err
	})
	return out, err
}

// Count implements Repo
func (p *PG) Count(ctx context.Context) (int64, error) {
	return store.Scalar[int64](ctx, p.db, pgCount)
}

func (r *queries) insert(ctx context.Context, docs []Doc) error {
	for _, d := range docs {
		if _, err := r.q.Exec(ctx, pgInsert, d.ID, d.Body); err != nil {
			return err
		}
	}
	return nil
}
