// Package module wires charts into the API using modkit
package module

import (
	modkit "scorebook/internal/modkit"
	"scorebook/internal/modkit/httpkit"
	str "scorebook/internal/platform/strings"
	chartshttp "scorebook/internal/services/api/charts/http"
	chartssvc "scorebook/internal/services/api/charts/service"
)

// Module implements modkit.Module for /charts
type Module struct {
	b   modkit.Built
	svc *chartssvc.Service
}

// New constructs the charts module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps.Validate("charts")
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("charts"),
		modkit.WithPrefix("/charts"),
	}, opts...)...)
	return &Module{b: b, svc: chartssvc.New(deps.Data, deps.Metrics)}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { chartshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports exposes the charts service unless overridden with WithPorts
func (m *Module) Ports() any {
	if m.b.Ports != nil {
		return m.b.Ports
	}
	return m.svc
}
