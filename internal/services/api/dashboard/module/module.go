// Package module wires the dashboard into the API using modkit
package module

import (
	"net/http"

	modkit "piptrade/internal/modkit"
	"piptrade/internal/modkit/httpkit"
	str "piptrade/internal/platform/strings"

	dashhttp "piptrade/internal/services/api/dashboard/http"
	dashsvc "piptrade/internal/services/api/dashboard/service"
	recsdom "piptrade/internal/services/records/domain"
)

// Ports are what the dashboard needs from other modules
type Ports struct {
	Records recsdom.RecordsPort
}

// Module implements the dashboard module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws []func(http.Handler) http.Handler
	svc *dashsvc.Svc
}

// New constructs the dashboard module, the records port arrives via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("dashboard"), modkit.WithPrefix("/dashboard")}, opts...)...)

	in, ok := b.Ports.(Ports)
	if !ok || in.Records == nil {
		panic("dashboard module requires Ports{Records} via modkit.WithPorts")
	}
	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    dashsvc.New(in.Records),
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) { dashhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports exposes nothing, the dashboard only consumes
func (m *Module) Ports() any { return nil }
