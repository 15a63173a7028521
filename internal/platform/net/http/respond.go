// Package http holds the chi-backed router seam, the server and the envelope responders
package http

import (
	"encoding/json"
	stdhttp "net/http"

	pnet "piptrade/internal/platform/net"
)

// Envelope is the body every /api/v1 endpoint answers with
type Envelope = pnet.Wire

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Response is what return-style handlers hand back; Body may be an error
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header

	// Raw skips the envelope, written verbatim as ContentType
	Raw         []byte
	ContentType string
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, pnet.RequestID(r.Context()))
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, reqID string) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	if err, ok := resp.Body.(error); ok && err != nil {
		status, body := pnet.Error(err, reqID)
		JSON(w, status, body)
		return
	}

	status := max(resp.Status, stdhttp.StatusOK)
	if resp.Raw != nil {
		ct := resp.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ct)
		w.WriteHeader(status)
		_, _ = w.Write(resp.Raw)
		return
	}
	_, body := pnet.Reply(status, resp.Body, reqID)
	JSON(w, status, body)
}

// OK wraps data in a 200 envelope
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error lets the error's code pick status and envelope
func Error(err error) Response { return Response{Body: err} }

// Raw answers 200 with body as-is
func Raw(contentType string, body []byte) Response {
	if body == nil {
		body = []byte{}
	}
	return Response{Status: stdhttp.StatusOK, Raw: body, ContentType: contentType}
}
