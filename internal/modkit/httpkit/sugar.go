package httpkit

import "net/http"

// Get mounts a bodyless handler answering in the envelope
func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }

// PostJSON mounts a handler taking a validated JSON body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// GetResponse mounts a handler that builds its own Response, e.g. Raw
func GetResponse(r Router, path string, h func(*http.Request) Response) { r.Get(path, Handle(h)) }
