package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	perr "piptrade/internal/platform/errors"
	pnet "piptrade/internal/platform/net"

	"github.com/go-chi/httprate"
)

// RateLimitOptions configures a per client limiter
type RateLimitOptions struct {
	// Requests allowed per Window, <= 0 disables the limiter
	Requests int
	Window   time.Duration

	// OnLimit answers throttled requests, defaults to a 429 envelope
	OnLimit http.HandlerFunc
}

// RateLimitByIP limits requests per client address with go-chi/httprate
func RateLimitByIP(o RateLimitOptions) func(http.Handler) http.Handler {
	if o.Requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if o.Window <= 0 {
		o.Window = time.Minute
	}
	onLimit := o.OnLimit
	if onLimit == nil {
		onLimit = tooManyRequests
	}
	return httprate.Limit(
		o.Requests,
		o.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(onLimit),
	)
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	err := perr.New(perr.ErrorCodeTooManyRequests, "too many requests, slow down")
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
