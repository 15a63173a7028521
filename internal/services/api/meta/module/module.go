// Package module mounts the meta endpoints
package module

import (
	"net/http"
	"time"

	modkit "piptrade/internal/modkit"
	"piptrade/internal/modkit/httpkit"
	"piptrade/internal/modkit/module"
	str "piptrade/internal/platform/strings"

	metahttp "piptrade/internal/services/api/meta/http"
	recsdom "piptrade/internal/services/records/domain"
)

// ServiceName is reported by health and service endpoints
const ServiceName = "piptrade-api"

// Ports are the optional inputs from other modules
type Ports struct {
	Records recsdom.RecordsPort
}

// Module serves /meta
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	deps   metahttp.Deps
}

// New builds the meta module, a records port passed via modkit.WithPorts adds the record count to readiness
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)
	in, _ := b.Ports.(Ports)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		deps: metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   time.Now(),
			Backend:     string(deps.Selected()),
			Records:     in.Records,
			PG:          deps.PG,
			CH:          deps.CH,
			Modules:     module.Names,
		},
	}
	return m
}

func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports is nil, meta exports nothing
func (m *Module) Ports() any { return nil }
