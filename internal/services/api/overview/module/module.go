// Package module wires the overview strip into the API using modkit
package module

import (
	modkit "scorebook/internal/modkit"
	"scorebook/internal/modkit/httpkit"
	str "scorebook/internal/platform/strings"
	ovhttp "scorebook/internal/services/api/overview/http"
	ovsvc "scorebook/internal/services/api/overview/service"
)

// Module implements modkit.Module for /overview
type Module struct {
	b   modkit.Built
	svc *ovsvc.Service
}

// New constructs the overview module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps.Validate("overview")
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("overview"),
		modkit.WithPrefix("/overview"),
	}, opts...)...)
	return &Module{b: b, svc: ovsvc.New(deps.Data)}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { ovhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports exposes the overview service unless overridden with WithPorts
func (m *Module) Ports() any {
	if m.b.Ports != nil {
		return m.b.Ports
	}
	return m.svc
}
