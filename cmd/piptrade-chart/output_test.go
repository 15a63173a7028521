package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"piptrade/internal/client"
	"piptrade/internal/core/chart"
	"piptrade/internal/core/filter"
	"piptrade/internal/core/record"
)

type staticFetcher []record.Record

func (f staticFetcher) FetchAll(context.Context) ([]record.Record, error) { return f, nil }

func session(t *testing.T) *client.Session {
	t.Helper()
	s := client.NewSession(staticFetcher{
		{Topic: "gas", Intensity: 6},
		{Topic: "oil", Intensity: 8},
	})
	s.Load(context.Background())
	return s
}

func TestWrite_SVG(t *testing.T) {
	s := session(t)
	var buf bytes.Buffer
	if err := write(&buf, s, formatSVG); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<svg") {
		t.Fatalf("not an svg document: %.40q", buf.String())
	}
}

func TestWrite_JSONGeometry(t *testing.T) {
	s := session(t)
	s.SetFilter(filter.KeyTopic, "oil")
	var buf bytes.Buffer
	if err := write(&buf, s, formatJSON); err != nil {
		t.Fatalf("write: %v", err)
	}
	var g chart.Geometry
	if err := json.Unmarshal(buf.Bytes(), &g); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Bars) != 1 || g.Bars[0].Topic != "oil" {
		t.Fatalf("bars = %+v", g.Bars)
	}
}

func TestWriteOptions(t *testing.T) {
	var buf bytes.Buffer
	if err := writeOptions(&buf, session(t)); err != nil {
		t.Fatalf("writeOptions: %v", err)
	}
	if !strings.Contains(buf.String(), `"topic"`) {
		t.Fatalf("topic options missing: %s", buf.String())
	}
}

func TestOpenOut_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.svg")
	w, closeOut, err := openOut(path)
	if err != nil {
		t.Fatalf("openOut: %v", err)
	}
	if _, err := w.Write([]byte("<svg/>")); err != nil {
		t.Fatalf("write: %v", err)
	}
	closeOut()
}
