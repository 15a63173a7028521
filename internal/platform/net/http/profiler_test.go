package http_test

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "piptrade/internal/platform/net/http"
)

func TestMountProfiler(t *testing.T) {
	cases := []struct {
		enabled bool
		path    string
		want    []int
	}{
		{true, "/debug/pprof/", []int{http.StatusOK}},
		{true, "/debug/pprof/cmdline", []int{http.StatusOK}},
		{true, "/debug", []int{http.StatusMovedPermanently, http.StatusPermanentRedirect, http.StatusNotFound}},
		{false, "/debug/pprof/", []int{http.StatusNotFound}},
	}
	for _, c := range cases {
		r := phttp.AdaptChi(chi.NewRouter())
		phttp.MountProfiler(r, "/debug", c.enabled)

		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, c.path, nil))
		if !slices.Contains(c.want, rr.Code) {
			t.Fatalf("enabled=%v %s => %d want one of %v", c.enabled, c.path, rr.Code, c.want)
		}
		if c.enabled && rr.Code == http.StatusOK && rr.Header().Get("Cache-Control") == "" {
			t.Fatalf("%s served without no-cache", c.path)
		}
	}
}
