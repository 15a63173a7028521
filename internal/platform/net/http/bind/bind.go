// Package bind decodes and validates JSON request bodies
package bind

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "piptrade/internal/platform/errors"
	"piptrade/internal/platform/logger"
)

// DefaultMaxBytes caps bodies when no options are given
const DefaultMaxBytes int64 = 10 << 20

// JSONOptions tunes ParseJSON
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// Defaults returns the options ParseJSON uses when none are passed
func Defaults() JSONOptions {
	return JSONOptions{MaxBytes: DefaultMaxBytes, DisallowUnknown: true}
}

// trailing reports whether the decoder still holds data, swapped in tests
var trailing = func(dec *json.Decoder) bool { return dec.More() }

// bodyless methods tolerate a missing body
var bodyless = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// ParseJSON decodes one JSON value from the request body into T and validates it
// Slices are validated element by element
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var out T
	o := Defaults()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Warn().Err(err).Msg("closing request body")
		}
	}()

	var src io.Reader = r.Body
	if o.MaxBytes > 0 {
		src = http.MaxBytesReader(nil, r.Body, o.MaxBytes)
	}
	br := bufio.NewReader(src)
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) && (o.AllowEmptyBody || bodyless[r.Method]) {
			return out, nil
		}
		if tooBig(err) != nil {
			return out, tooBig(err)
		}
		return out, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(br)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&out); err != nil {
		var zero T
		if e := tooBig(err); e != nil {
			return zero, e
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if trailing(dec) {
		var zero T
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func tooBig(err error) error {
	var mb *http.MaxBytesError
	if errors.As(err, &mb) {
		return perr.TooLargef("request body exceeds %d bytes", mb.Limit)
	}
	return nil
}
