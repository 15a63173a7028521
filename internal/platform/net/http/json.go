package http

import (
	"net/http"

	"piptrade/internal/platform/net/http/bind"
)

// JSONHandlerResponse decodes and validates T from r, then folds fn's result
// into an envelope; bind failures never reach fn
func JSONHandlerResponse[T any](r *http.Request, fn func(*http.Request, T) (any, error)) Response {
	in, err := bind.ParseJSON[T](r)
	if err != nil {
		return Error(err)
	}
	out, err := fn(r, in)
	if err != nil {
		return Error(err)
	}
	return OK(out)
}
