package repo

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestCH_InsertSendsOneOrderedBatch(t *testing.T) {
	t.Parallel()
	c := &fakeCH{}
	r := NewCH(c)
	r.seq = func() uint64 { return 100 }

	id1, id2 := uuid.New(), uuid.New()
	docs := []Doc{{ID: id1.String(), Body: `{"a":1}`}, {ID: id2.String(), Body: `{"b":2}`}}
	if err := r.Insert(context.Background(), docs); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if c.table != Table || !reflect.DeepEqual(c.cols, []string{"id", "seq", "doc"}) {
		t.Fatalf("table=%q cols=%v", c.table, c.cols)
	}
	want := [][]any{{id1, uint64(100), `{"a":1}`}, {id2, uint64(101), `{"b":2}`}}
	if !reflect.DeepEqual(c.batch, want) {
		t.Fatalf("batch = %v", c.batch)
	}
}

func TestCH_InsertRejectsBadID(t *testing.T) {
	t.Parallel()
	c := &fakeCH{}
	if err := NewCH(c).Insert(context.Background(), []Doc{{ID: "nope", Body: "{}"}}); err == nil {
		t.Fatalf("expected uuid parse error")
	}
	if c.batch != nil {
		t.Fatalf("nothing should be sent")
	}
}

func TestCH_AllAndCount(t *testing.T) {
	t.Parallel()
	c := &fakeCH{rows: [][]any{{"id-1", `{"topic":"gas"}`}}}
	r := NewCH(c)
	docs, err := r.All(context.Background())
	if err != nil || len(docs) != 1 || docs[0].ID != "id-1" {
		t.Fatalf("docs=%v err=%v", docs, err)
	}
	if !strings.Contains(c.queries[0], "ORDER BY seq") {
		t.Fatalf("query = %q", c.queries[0])
	}

	c.rows = [][]any{{uint64(3)}}
	if n, err := r.Count(context.Background()); err != nil || n != 3 {
		t.Fatalf("count = %d %v", n, err)
	}
	c.rows = nil
	if _, err := r.Count(context.Background()); err == nil {
		t.Fatalf("empty count should fail")
	}
}

func TestCH_SchemaAndErrors(t *testing.T) {
	t.Parallel()
	c := &fakeCH{}
	r := NewCH(c)
	if err := r.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if !strings.HasPrefix(c.execs[0], "CREATE TABLE IF NOT EXISTS records") {
		t.Fatalf("schema = %q", c.execs[0])
	}
	c.err = errors.New("down")
	if _, err := r.All(context.Background()); err == nil {
		t.Fatalf("expected query error")
	}
}
