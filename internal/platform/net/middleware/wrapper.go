// Package middleware adapts chi and go-chi/cors middleware so callers never import chi
package middleware

import (
	"net/http"
	"time"

	"piptrade/internal/platform/logger"
	pnet "piptrade/internal/platform/net"
	pstrings "piptrade/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the stdlib decorator shape every helper here returns
type Middleware = func(http.Handler) http.Handler

// compressible are the content types Compress touches
var compressible = []string{"application/json", "image/svg+xml", "text/plain", "text/html"}

func RequestID() Middleware            { return chimw.RequestID }
func RealIP() Middleware               { return chimw.RealIP }
func NoCache() Middleware              { return chimw.NoCache }
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress gzips/deflates compressible bodies at level
func Compress(level int) Middleware {
	return chimw.NewCompressor(level, compressible...).Handler
}

// RequestScope puts the request id and caller address where pnet and
// logger.C look for them; it must run after RequestID and RealIP
func RequestScope() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, addr := chimw.GetReqID(r.Context()), r.RemoteAddr
			ctx := logger.WithRequest(pnet.WithRequest(r.Context(), id, addr), id, addr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORSOptions is the part of go-chi/cors we expose; empty lists take defaults
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions}),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

// Defaults is the request scope every route runs in, outermost first.
// Deadlines and cache headers belong to route groups.
func Defaults() []Middleware {
	return []Middleware{RealIP(), RequestID(), RequestScope(), RecoverJSON}
}
