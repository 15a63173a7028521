package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"piptrade/internal/platform/store"
)

// memRows serves canned rows to store.Many
type memRows struct {
	data [][]any
	i    int
}

func (r *memRows) Next() bool { r.i++; return r.i <= len(r.data) }
func (r *memRows) Err() error { return nil }
func (r *memRows) Close()     {}
func (r *memRows) Columns() []string {
	return nil
}

func (r *memRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d dest for %d cols", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *int64:
			*p = row[i].(int64)
		case *uint64:
			*p = row[i].(uint64)
		default:
			return fmt.Errorf("scan: unsupported %T", d)
		}
	}
	return nil
}

type memRow struct{ rows *memRows }

func (r memRow) Scan(dest ...any) error {
	if !r.rows.Next() {
		return errors.New("no rows")
	}
	return r.rows.Scan(dest...)
}

type tag struct{}

func (tag) String() string      { return "INSERT 0 1" }
func (tag) RowsAffected() int64 { return 1 }

// fakePG records every statement and can fail on a matching prefix
type fakePG struct {
	execs   []string
	args    [][]any
	rows    [][]any
	failOn  string
	txs     int
	aborted int
}

func (f *fakePG) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.execs = append(f.execs, strings.TrimSpace(sql))
	f.args = append(f.args, args)
	if f.failOn != "" && strings.HasPrefix(strings.TrimSpace(sql), f.failOn) {
		return nil, errors.New("exec failed")
	}
	return tag{}, nil
}

func (f *fakePG) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	f.execs = append(f.execs, strings.TrimSpace(sql))
	return &memRows{data: f.rows}, nil
}

func (f *fakePG) QueryRow(_ context.Context, sql string, _ ...any) store.Row {
	f.execs = append(f.execs, strings.TrimSpace(sql))
	return memRow{rows: &memRows{data: f.rows}}
}

func (f *fakePG) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	f.txs++
	if err := fn(f); err != nil {
		f.aborted++
		return err
	}
	return nil
}

// fakeCH records batches
type fakeCH struct {
	execs   []string
	table   string
	cols    []string
	batch   [][]any
	rows    [][]any
	err     error
	queries []string
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, strings.TrimSpace(sql))
	return f.err
}

func (f *fakeCH) Insert(_ context.Context, table string, cols []string, rows [][]any) error {
	f.table, f.cols, f.batch = table, cols, rows
	return f.err
}

func (f *fakeCH) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	f.queries = append(f.queries, sql)
	if f.err != nil {
		return nil, f.err
	}
	return &memRows{data: f.rows}, nil
}

func (f *fakeCH) Ping(context.Context) error { return nil }
func (f *fakeCH) Close() error               { return nil }
