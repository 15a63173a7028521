package modkit

import "net/http"

// Option tunes how a module is built
type Option func(*Built)

// WithName sets the module name used in logs and the port registry
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix mounts the module under prefix
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends per module middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the ports it consumes from other modules
// The concrete type belongs to the consuming module
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}
