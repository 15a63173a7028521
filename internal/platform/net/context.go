// Package net carries request-scoped values shared by transports
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyRemoteIP ctxKey = "remote_ip"

// WithRequest annotates ctx with the request id and caller address
func WithRequest(ctx context.Context, reqID, remoteIP string) context.Context {
	if reqID != "" {
		// chi's key so chimw.GetReqID sees it too
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if remoteIP != "" {
		ctx = context.WithValue(ctx, keyRemoteIP, remoteIP)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// RemoteIP returns the caller address on the context if present
func RemoteIP(ctx context.Context) string {
	if v, ok := ctx.Value(keyRemoteIP).(string); ok {
		return v
	}
	return ""
}
