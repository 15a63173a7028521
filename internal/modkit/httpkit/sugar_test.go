package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "piptrade/internal/platform/errors"
	phttp "piptrade/internal/platform/net/http"
)

func newRouter() (Router, http.Handler) {
	mux := chi.NewRouter()
	return phttp.AdaptChi(mux), mux
}

func serve(t *testing.T, h http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	var env map[string]any
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s: %v", rr.Body.String(), err)
		}
	}
	return rr.Code, env
}

func TestSugar_GetAndPost(t *testing.T) {
	type in struct {
		Topic string `json:"topic" validate:"required"`
	}
	r, h := newRouter()
	Get(r, "/options", func(*http.Request) (any, error) { return "gas", nil })
	Get(r, "/gone", func(*http.Request) (any, error) { return nil, perr.NotFoundf("no chart") })
	Get(r, "/svg", func(*http.Request) (any, error) { return Raw("image/svg+xml", []byte("<svg/>")), nil })
	PostJSON(r, "/chart", func(_ *http.Request, v in) (any, error) { return v.Topic, nil })

	cases := []struct {
		method, path, body string
		want               int
		data               any
	}{
		{http.MethodGet, "/options", "", http.StatusOK, "gas"},
		{http.MethodGet, "/gone", "", http.StatusNotFound, nil},
		{http.MethodGet, "/svg", "", http.StatusOK, nil},
		{http.MethodPost, "/chart", `{"topic":"oil"}`, http.StatusOK, "oil"},
		{http.MethodPost, "/chart", `{}`, http.StatusBadRequest, nil},
		{http.MethodPost, "/chart", `{"topic":`, http.StatusBadRequest, nil},
	}
	for _, c := range cases {
		code, env := serve(t, h, c.method, c.path, c.body)
		if code != c.want {
			t.Fatalf("%s %s = %d want %d", c.method, c.path, code, c.want)
		}
		if c.data != nil && env["data"] != c.data {
			t.Fatalf("%s %s data = %v want %v", c.method, c.path, env["data"], c.data)
		}
	}
}

func TestSugar_GetResponseRaw(t *testing.T) {
	r, h := newRouter()
	GetResponse(r, "/img", func(*http.Request) Response {
		return Raw("image/svg+xml", []byte("<svg/>"))
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/img", nil))
	if rr.Code != http.StatusOK || rr.Header().Get("Content-Type") != "image/svg+xml" || rr.Body.String() != "<svg/>" {
		t.Fatalf("raw = %d %q %q", rr.Code, rr.Header().Get("Content-Type"), rr.Body.String())
	}
}
