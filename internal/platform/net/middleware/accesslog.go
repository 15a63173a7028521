package middleware

import (
	"context"
	"net/http"
	"time"

	"piptrade/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions tunes AccessLogZerolog
type AccessLogOptions struct {
	// Slow raises requests at or above it to warn, 0 never does
	Slow time.Duration
	// Logger picks the logger per request, logger.C when nil
	Logger func(context.Context) *logger.Logger
}

// AccessLogZerolog writes one line per request; 5xx answers log at error
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	pick := opt.Logger
	if pick == nil {
		pick = logger.C
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log := pick(r.Context())
			e := log.Info()
			switch {
			case status >= http.StatusInternalServerError:
				e = log.Error()
			case opt.Slow > 0 && took >= opt.Slow:
				e = log.Warn()
			}
			e.Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", took).
				Msg("request done")
		})
	}
}
