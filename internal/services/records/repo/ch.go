package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"piptrade/internal/modkit/repokit"
	"piptrade/internal/platform/store"
)

const (
	chSchema = `
CREATE TABLE IF NOT EXISTS records (
	id         UUID,
	seq        UInt64,
	doc        String,
	created_at DateTime64(3) DEFAULT now64(3)
) ENGINE = MergeTree
ORDER BY seq`
	chAll   = `SELECT toString(id), doc FROM records ORDER BY seq ASC`
	chCount = `SELECT count() FROM records`
)

var chColumns = []string{"id", "seq", "doc"}

// CH stores records as JSON strings in a MergeTree table
type CH struct {
	c repokit.Columnar

	// seq hands out the insertion order, a nanosecond clock keeps batches ordered
	seq func() uint64
}

// NewCH binds the repo to a ClickHouse seam
func NewCH(c repokit.Columnar) *CH {
	return &CH{c: c, seq: func() uint64 { return uint64(time.Now().UnixNano()) }}
}

// EnsureSchema implements Repo
func (r *CH) EnsureSchema(ctx context.Context) error {
	return r.c.Exec(ctx, chSchema)
}

// Insert implements Repo, the rows go out as a single batch
func (r *CH) Insert(ctx context.Context, docs []Doc) error {
	if len(docs) == 0 {
		return nil
	}
	base := r.seq()
	rows := make([][]any, 0, len(docs))
	for i, d := range docs {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return err
		}
		rows = append(rows, []any{id, base + uint64(i), d.Body})
	}
	return r.c.Insert(ctx, Table, chColumns, rows)
}

// All implements Repo
func (r *CH) All(ctx context.Context) ([]Doc, error) {
	return store.Many(ctx, r.c, scanDoc, chAll)
}

// Count implements Repo
func (r *CH) Count(ctx context.Context) (int64, error) {
	n, err := store.Many(ctx, r.c, func(row store.Row) (uint64, error) {
		var v uint64
		return v, row.Scan(&v)
	}, chCount)
	if err != nil {
		return 0, err
	}
	if len(n) == 0 {
		return 0, errors.New("count returned no rows")
	}
	return int64(n[0]), nil
}
