package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"piptrade/internal/core/record"
	perr "piptrade/internal/platform/errors"
	"piptrade/internal/platform/testkit"
)

func serve(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL + "/"})
}

func TestFetchAll_DecodesData(t *testing.T) {
	var hits atomic.Int32
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method != http.MethodGet || r.URL.Path != "/alldata" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != defaultUA {
			t.Errorf("user agent = %q", ua)
		}
		_, _ = io.WriteString(w, `{"data":[{"_id":"a","topic":"gas","intensity":"6","end_year":"2027"},{"_id":"b","topic":"oil","intensity":2,"end_year":""}]}`)
	})

	recs, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(recs) != 2 || recs[0].Intensity != 6 || recs[0].EndYear != 2027 || recs[1].EndYear.IsSet() {
		t.Fatalf("records = %+v", recs)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected exactly one request, got %d", hits.Load())
	}
}

func TestFetchAll_FailureCarriesSpecificError(t *testing.T) {
	var hits atomic.Int32
	c := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"An error occurred while retrieving data","specificError":"timeout"}`)
	})

	_, err := c.FetchAll(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	testkit.MustContain(t, err.Error(), "An error occurred while retrieving data: timeout")
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
	if hits.Load() != 1 {
		t.Fatalf("failures must not be retried, got %d requests", hits.Load())
	}
}

func TestFetchAll_BadBody(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"data":`)
	})
	_, err := c.FetchAll(context.Background())
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("want json error, got %v", err)
	}
}

func TestFetchAll_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(Options{BaseURL: url}).FetchAll(context.Background())
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("want unavailable, got %v", err)
	}
}

func TestSave_PostsArray(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		var in []record.Record
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode: %v", err)
		}
		for i := range in {
			in[i] = in[i].WithID("id-" + in[i].Topic)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Data saved successfully", "data": in})
	})

	out, err := c.Save(context.Background(), []record.Record{{Topic: "gas"}, {Topic: "oil"}})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(out) != 2 || out[1].ID != "id-oil" {
		t.Fatalf("saved = %+v", out)
	}
}

func TestSave_RateLimited(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, "slow down")
	})
	_, err := c.Save(context.Background(), []record.Record{{Topic: "gas"}})
	if perr.CodeOf(err) != perr.ErrorCodeTooManyRequests {
		t.Fatalf("want too many requests, got %v", err)
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("status missing from %q", err.Error())
	}
}
