package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"piptrade/internal/platform/config"
	"piptrade/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	SlowRequest time.Duration
	CORS        middleware.CORSOptions
	Heartbeat   string
}

// StackFromConf reads SLOW_REQUEST, CORS_ORIGINS and HEARTBEAT_PATH from c
func StackFromConf(c config.Conf) StackOptions {
	return StackOptions{
		SlowRequest: c.MayDuration("SLOW_REQUEST", time.Second),
		CORS:        middleware.CORSOptions{AllowedOrigins: c.MayCSV("CORS_ORIGINS", nil)},
		Heartbeat:   c.MayString("HEARTBEAT_PATH", "/health"),
	}
}

// CommonStack is the root middleware every route runs behind; request
// scope comes first so logging and recovery see the request id
func CommonStack(opt StackOptions) []func(http.Handler) http.Handler {
	stack := append(middleware.Defaults(),
		middleware.Metrics(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: opt.SlowRequest}),
		middleware.CORS(opt.CORS),
	)
	if opt.Heartbeat != "" {
		stack = append(stack, middleware.Heartbeat(opt.Heartbeat))
	}
	return append(stack, middleware.Compress(flate.DefaultCompression))
}
