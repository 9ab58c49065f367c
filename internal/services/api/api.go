// Package api provides the HTTP API for the dashboard
package api

import (
	"time"

	phttp "scorebook/internal/platform/net/http"

	"scorebook/internal/modkit"
	"scorebook/internal/modkit/httpkit"
	"scorebook/internal/modkit/module"
	"scorebook/internal/modkit/swaggerkit"

	chartsmod "scorebook/internal/services/api/charts/module"
	inningsmod "scorebook/internal/services/api/innings/module"
	metamod "scorebook/internal/services/api/meta/module"
	overviewmod "scorebook/internal/services/api/overview/module"
	qamod "scorebook/internal/services/api/qa/module"
)

// Options are the API options
type Options struct {
	Deps           modkit.Deps
	CORSOrigins    []string
	SlowRequest    time.Duration
	RequestTimeout time.Duration
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// builders in mount order
var builders = []modkit.Builder{
	metamod.New,
	overviewmod.New,
	chartsmod.New,
	inningsmod.New,
	qamod.New,
}

// Modules builds every API module in mount order
func Modules(deps modkit.Deps) []module.Module {
	out := make([]module.Module, len(builders))
	for i, b := range builders {
		out[i] = b(deps)
	}
	return out
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	mods := Modules(opt.Deps)

	so := httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		Slow:        opt.SlowRequest,
		Timeout:     opt.RequestTimeout,
	}
	if opt.Deps.Metrics != nil {
		so.Observer = opt.Deps.Metrics
	}
	stack := httpkit.CommonStack(so)

	// Swagger, profiler and metrics live outside /api/v1
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && opt.Deps.Metrics != nil {
		r.Handle("/metrics", opt.Deps.Metrics.Handler())
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// modules without a service (meta) are skipped by the registry
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	log := opt.Deps.Log.With().Str("component", "api").Logger()
	log.Info().Strs("modules", routes(mods)).Strs("ports", module.Names()).
		Bool("swagger", opt.EnableSwagger).Bool("pprof", opt.EnableProfiler).
		Bool("metrics", opt.EnableMetrics && opt.Deps.Metrics != nil).
		Msg("api mounted")
}

// routes renders each module as name=/api/v1/prefix for the startup log
func routes(mods []module.Module) []string {
	out := make([]string, len(mods))
	for i, m := range mods {
		out[i] = m.Name()
		if p, ok := m.(interface{ Prefix() string }); ok {
			out[i] += "=" + httpkit.APIV1 + p.Prefix()
		}
	}
	return out
}
