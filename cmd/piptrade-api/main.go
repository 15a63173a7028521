// @title         Piptrade API
// @version       0.1.0
// @description   Record store, filter engine and chart renderer for the piptrade dashboard

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"piptrade/internal/modkit"
	"piptrade/internal/modkit/repokit"
	"piptrade/internal/platform/config"
	"piptrade/internal/platform/logger"
	phttp "piptrade/internal/platform/net/http"
	"piptrade/internal/platform/store"

	"piptrade/internal/services/api"
)

const appName = "piptrade-api"

func main() {
	// .env first so every view below sees it
	config.LoadDotEnv()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// one budget bounds the fetch context, statement_timeout and max_execution_time
	budget := apiCfg.MayDuration("FETCH_BUDGET", modkit.DefaultFetchBudget)
	backend, stCfg := store.FromEnv(root, appName, budget)

	st, err := store.Open(ctx, stCfg, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Str("backend", string(backend)).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// http server (reads PORT, default 6000)
	srv := phttp.NewServer(root, phttp.WithGrace(apiCfg.MayDuration("SHUTDOWN_GRACE", phttp.DefaultGrace)))

	if err := api.Mount(ctx, srv.Router(), api.Options{
		Config:         apiCfg,
		Store:          st,
		Logger:         l,
		Backend:        backend,
		FetchBudget:    budget,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	}); err != nil {
		l.Panic().Err(err).Msg("api mount failed")
	}

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
