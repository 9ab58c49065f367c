// Command scorebook-api serves the innings dashboard API
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"scorebook/internal/modkit"
	"scorebook/internal/platform/config"
	"scorebook/internal/platform/logger"
	"scorebook/internal/platform/metrics"
	phttp "scorebook/internal/platform/net/http"
	"scorebook/internal/platform/net/middleware"
	"scorebook/internal/platform/store"
	"scorebook/internal/services/api"
	"scorebook/internal/services/dataset"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Named("main")

	// service-scoped config for HTTP etc (SCOREBOOK_API_*)
	root := config.New()
	apiCfg := root.Prefix("SCOREBOOK_API_")
	dataCfg := dataset.ConfigFromEnv(root)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// open only the backend the data source needs
	st, err := store.Open(ctx, store.FromEnv(root, "scorebook-api", dataCfg.Kind), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	src, err := dataset.NewSource(dataCfg, st)
	if err != nil {
		l.Panic().Err(err).Msg("dataset source")
	}

	var m *metrics.Metrics
	if apiCfg.MayBool("METRICS", true) {
		m = metrics.New()
	}
	opts := []dataset.Option{}
	if m != nil {
		opts = append(opts, dataset.WithObserver(m))
	}
	data := dataset.NewCached(src, opts...)

	// a dataset that cannot be loaded is fatal at startup
	if _, err := data.Dataset(ctx); err != nil {
		l.Panic().Err(err).Str("source", src.Name()).Msg("dataset load failed")
	}

	// http server (reads SCOREBOOK_API_PORT etc); /healthz answers before routing
	srv := phttp.NewServer(apiCfg, func(mux *chi.Mux) {
		mux.Use(middleware.Heartbeat("/healthz"))
	})

	api.Mount(srv.Router(), api.Options{
		Deps: modkit.Deps{
			Log:     *logger.Get(),
			Cfg:     apiCfg,
			Data:    data,
			Metrics: m,
			Store:   st,
		},
		CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", nil),
		SlowRequest:    apiCfg.MayDuration("SLOW_REQUEST", 0),
		RequestTimeout: apiCfg.MayDuration("REQUEST_TIMEOUT", 0),
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		EnableMetrics:  m != nil,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		l.Info().Msg("shutdown requested")
		return nil
	})
	if err := g.Wait(); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
