// Package module wires the record store and the /alldata routes
package module

import (
	"context"
	"net/http"

	modkit "piptrade/internal/modkit"
	"piptrade/internal/modkit/httpkit"
	"piptrade/internal/platform/net/middleware"
	"piptrade/internal/platform/store"
	str "piptrade/internal/platform/strings"

	recshttp "piptrade/internal/services/records/http"
	"piptrade/internal/services/records/repo"
	"piptrade/internal/services/records/service"
)

// Module implements the records module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws    []func(http.Handler) http.Handler
	ingest middleware.RateLimitOptions

	repo repo.Repo
	svc  *service.Svc
}

// New constructs the records module on the backend deps selects
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("records"), modkit.WithPrefix("/alldata")}, opts...)...)

	backend := deps.Selected()
	r := NewRepo(deps)
	svc := service.New(r, backend, deps.Budget())

	return &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ingest: middleware.RateLimitOptions{Requests: o.IngestRate, Window: o.IngestWindow},
		repo:   r,
		svc:    svc,
	}
}

// NewRepo picks the repo for the selected backend
func NewRepo(deps modkit.Deps) repo.Repo {
	switch deps.Selected() {
	case store.BackendClickhouse:
		if deps.CH == nil {
			panic("records: clickhouse backend selected without a clickhouse handle")
		}
		return repo.NewCH(deps.CH)
	default:
		if deps.PG == nil {
			panic("records: pg backend selected without a postgres handle")
		}
		return repo.NewPG(deps.PG, deps.Budget())
	}
}

// Bootstrap creates the records table when missing
func (m *Module) Bootstrap(ctx context.Context) error { return m.repo.EnsureSchema(ctx) }

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		recshttp.Register(rr, recshttp.Deps{Records: m.svc, Ingest: m.ingest})
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
