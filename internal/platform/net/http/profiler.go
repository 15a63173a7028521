package http

import (
	stdhttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// MountProfiler serves pprof under prefix (e.g. /debug/pprof/) when enabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	pprof := stdhttp.StripPrefix(prefix, chimw.Profiler())
	r.Group(func(g Router) {
		g.Use(chimw.NoCache)
		g.Handle(prefix, pprof)
		g.Handle(prefix+"/*", pprof)
	})
}
