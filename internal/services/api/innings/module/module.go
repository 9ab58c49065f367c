// Package module wires the innings table into the API using modkit
package module

import (
	modkit "scorebook/internal/modkit"
	"scorebook/internal/modkit/httpkit"
	str "scorebook/internal/platform/strings"
	inhttp "scorebook/internal/services/api/innings/http"
	insvc "scorebook/internal/services/api/innings/service"
)

// Module implements modkit.Module for /innings
type Module struct {
	b   modkit.Built
	svc *insvc.Service
}

// New constructs the innings module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps.Validate("innings")
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("innings"),
		modkit.WithPrefix("/innings"),
	}, opts...)...)
	return &Module{b: b, svc: insvc.New(deps.Data, deps.Metrics)}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { inhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports exposes the innings service unless overridden with WithPorts
func (m *Module) Ports() any {
	if m.b.Ports != nil {
		return m.b.Ports
	}
	return m.svc
}
