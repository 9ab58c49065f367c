// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "scorebook/internal/modkit"
	"scorebook/internal/modkit/httpkit"
	"scorebook/internal/platform/net/middleware"
	str "scorebook/internal/platform/strings"

	metahttp "scorebook/internal/services/api/meta/http"
)

// ServiceName is reported by /meta/health and /meta/service
const ServiceName = "scorebook-api"

// Module implements the modkit.Module interface
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New constructs a meta module with the provided dependencies and options.
// Meta responses are never cached.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps.Validate("meta")
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
		modkit.WithMiddlewares(middleware.NoCache()),
	}, opts...)...)

	hd := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   time.Now(),
		Data:        deps.Data,
		ReadyWithin: deps.Cfg.MayDuration("READY_TIMEOUT", 2*time.Second),
	}
	if st := deps.Store; st != nil {
		if p, ok := st.PG.(metahttp.Pinger); ok {
			hd.PG = p
		}
		if st.CH != nil {
			hd.CH = st.CH
		}
	}
	return &Module{b: b, deps: hd}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.Name }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.b.Ports }
