// Package httpkit is the handler and routing surface modules build on
// Modules import this rather than internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "piptrade/internal/platform/net/http"
)

type (
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

// Error maps err to its status inside the envelope
func Error(err error) Response { return phttp.Error(err) }

// Raw answers 200 with body written as is
func Raw(contentType string, body []byte) Response { return phttp.Raw(contentType, body) }

// Handle adapts a Response returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// JSON binds and validates a T from the body then calls fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return phttp.JSONHandlerResponse(r, fn) })
}

// Call adapts a bodyless handler, a returned Response is written as is and anything else is wrapped as 200
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return phttp.Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return phttp.OK(out)
	})
}
