// Package module holds the module contract, port lookup and the process registry
package module

import phttp "piptrade/internal/platform/net/http"

// Module is what the composition root mounts
// It lives apart from modkit so a module can export its own ports type without an import cycle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
