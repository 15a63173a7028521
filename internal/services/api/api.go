// Package api provides the HTTP API for the application
package api

import (
	"context"
	"net/http"
	"time"

	"piptrade/internal/core/version"
	"piptrade/internal/platform/config"
	"piptrade/internal/platform/logger"
	"piptrade/internal/platform/metrics"
	phttp "piptrade/internal/platform/net/http"
	"piptrade/internal/platform/net/middleware"
	"piptrade/internal/platform/store"

	"piptrade/internal/modkit"
	"piptrade/internal/modkit/httpkit"
	"piptrade/internal/modkit/module"
	"piptrade/internal/modkit/swaggerkit"

	dashmod "piptrade/internal/services/api/dashboard/module"
	metamod "piptrade/internal/services/api/meta/module"
	recsdom "piptrade/internal/services/records/domain"
	recsmod "piptrade/internal/services/records/module"
)

// requestSlack is what a request gets on top of the fetch budget
const requestSlack = 5 * time.Second

// Options are the API options
type Options struct {
	// Config is the CORE_API_ view
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Backend        store.Backend
	FetchBudget    time.Duration
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
// the records table is created first when the records module asks for it
func Mount(ctx context.Context, r phttp.Router, opt Options) error {
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}
	st := opt.Store
	if st == nil {
		st = &store.Store{}
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:         *log,
		Cfg:         opt.Config,
		Backend:     opt.Backend,
		PG:          st.PG,
		CH:          st.CH,
		FetchBudget: opt.FetchBudget,
	}

	// the records module owns the store and exports the port everything else reads through
	recOpts := recsmod.FromConfig(opt.Config)
	records := recsmod.New(deps, recOpts, modkit.WithMiddlewares(
		middleware.Timeout(deps.Budget()+requestSlack),
		middleware.NoCache(),
	))
	if recOpts.EnsureSchema {
		if err := records.Bootstrap(ctx); err != nil {
			return err
		}
	}
	recs := module.MustPortsOf[recsdom.RecordsPort](records)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Records: recs})),
		dashmod.New(deps,
			modkit.WithPorts(dashmod.Ports{Records: recs}),
			// charts follow the live store
			modkit.WithMiddlewares(middleware.NoCache()),
		),
	}

	// root middleware must precede every route on the mux
	r.Use(httpkit.CommonStack(httpkit.StackFromConf(opt.Config))...)

	r.Handle("/metrics", metrics.Handler())

	// Swagger + profiler
	swaggerkit.Register(func(spec map[string]any) {
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = version.Info().Version
		}
	})
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// legacy data routes stay at the root
	module.Register(records.Name())
	records.MountRoutes(r)

	// versioned API
	// a whole record set read plus rendering must fit in the timeout
	v1 := []func(http.Handler) http.Handler{middleware.Timeout(deps.Budget() + requestSlack)}
	httpkit.MountAPIV1(r, v1, func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name())
			m.MountRoutes(api)
		}
	})

	log.Info().
		Str("backend", string(deps.Selected())).
		Dur("fetch_budget", deps.Budget()).
		Int("ingest_rate", recOpts.IngestRate).
		Msg("api mounted")
	return nil
}
