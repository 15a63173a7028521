package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// docRows serves id/doc string pairs
type docRows struct {
	data   [][2]string
	i      int
	err    error
	closed bool
}

func (r *docRows) Columns() []string { return []string{"id", "doc"} }
func (r *docRows) Err() error        { return r.err }
func (r *docRows) Close()            { r.closed = true }

func (r *docRows) Next() bool {
	if r.err != nil {
		return false
	}
	r.i++
	return r.i <= len(r.data)
}

func (r *docRows) Scan(dest ...any) error {
	if len(dest) != 2 {
		return fmt.Errorf("scan: want 2 dest, got %d", len(dest))
	}
	row := r.data[r.i-1]
	for i := range dest {
		p, ok := dest[i].(*string)
		if !ok {
			return fmt.Errorf("scan: dest %d is %T", i, dest[i])
		}
		*p = row[i]
	}
	return nil
}

type countTag int64

func (c countTag) String() string      { return fmt.Sprintf("INSERT 0 %d", c) }
func (c countTag) RowsAffected() int64 { return int64(c) }

// memQuerier is a RowQuerier over canned results
type memQuerier struct {
	rows     *docRows
	queryErr error
	count    int64
	scanErr  error
	execSQL  string
	execArgs []any
	txs      int
	pingErr  error
}

func (m *memQuerier) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	m.execSQL, m.execArgs = sql, args
	return countTag(len(args) / 2), nil
}

func (m *memQuerier) Query(context.Context, string, ...any) (Rows, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.rows, nil
}

func (m *memQuerier) QueryRow(context.Context, string, ...any) Row {
	return rowFunc(func(dest ...any) error {
		if m.scanErr != nil {
			return m.scanErr
		}
		*(dest[0].(*int64)) = m.count
		return nil
	})
}

func (m *memQuerier) Tx(_ context.Context, fn func(RowQuerier) error) error {
	m.txs++
	return fn(m)
}

// pingingQuerier adds Ping so Guard probes it
type pingingQuerier struct{ memQuerier }

func (p *pingingQuerier) Ping(context.Context) error { return p.pingErr }

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

func scanIDDoc(r Row) ([2]string, error) {
	var out [2]string
	err := r.Scan(&out[0], &out[1])
	return out, err
}

func TestExec_Passthrough(t *testing.T) {
	m := &memQuerier{}
	tag, err := Exec(context.Background(), m, "insert into records (id, doc) values ($1, $2), ($3, $4)", "a", "{}", "b", "{}")
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if tag.RowsAffected() != 2 || m.execSQL == "" || len(m.execArgs) != 4 {
		t.Fatalf("tag=%v sql=%q args=%v", tag, m.execSQL, m.execArgs)
	}
}

func TestScalar(t *testing.T) {
	n, err := Scalar[int64](context.Background(), &memQuerier{count: 1000}, "select count(1) from records")
	if err != nil || n != 1000 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}
	if n, err := Scalar[int64](context.Background(), &memQuerier{scanErr: errors.New("scan")}, "x"); err == nil || n != 0 {
		t.Fatalf("expected scan error and zero, got %d %v", n, err)
	}
}

func TestMany(t *testing.T) {
	rs := &docRows{data: [][2]string{{"a", `{"topic":"gas"}`}, {"b", "{}"}}}
	got, err := Many(context.Background(), &memQuerier{rows: rs}, scanIDDoc, "select id, doc from records")
	if err != nil {
		t.Fatalf("Many: %v", err)
	}
	if !reflect.DeepEqual(got, [][2]string{{"a", `{"topic":"gas"}`}, {"b", "{}"}}) || !rs.closed {
		t.Fatalf("got %v closed=%v", got, rs.closed)
	}

	got, err = Many(context.Background(), &memQuerier{rows: &docRows{}}, scanIDDoc, "x")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("empty result should be a non nil empty slice, got %#v %v", got, err)
	}
}

func TestMany_Errors(t *testing.T) {
	boom := errors.New("boom")

	if _, err := Many(context.Background(), &memQuerier{queryErr: boom}, scanIDDoc, "x"); !errors.Is(err, boom) {
		t.Fatalf("query error = %v", err)
	}

	one := func(r Row) (string, error) {
		var s string
		return s, r.Scan(&s)
	}
	if _, err := Many(context.Background(), &memQuerier{rows: &docRows{data: [][2]string{{"a", "{}"}}}}, one, "x"); err == nil {
		t.Fatal("expected scan error")
	}

	rs := &docRows{data: [][2]string{{"a", "{}"}}, err: boom}
	if _, err := Many(context.Background(), &memQuerier{rows: rs}, scanIDDoc, "x"); !errors.Is(err, boom) {
		t.Fatalf("expected rows.Err, got %v", err)
	}
}
