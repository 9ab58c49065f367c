// Package module wires Q&A into the API using modkit
package module

import (
	modkit "scorebook/internal/modkit"
	"scorebook/internal/modkit/httpkit"
	str "scorebook/internal/platform/strings"
	qahttp "scorebook/internal/services/api/qa/http"
	qasvc "scorebook/internal/services/api/qa/service"
)

// Module implements modkit.Module for /qa
type Module struct {
	b   modkit.Built
	svc *qasvc.Service
}

// New constructs the Q&A module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	deps.Validate("qa")
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("qa"),
		modkit.WithPrefix("/qa"),
	}, opts...)...)
	return &Module{b: b, svc: qasvc.New(deps.Data, deps.Metrics)}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { qahttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports exposes the Q&A service unless overridden with WithPorts
func (m *Module) Ports() any {
	if m.b.Ports != nil {
		return m.b.Ports
	}
	return m.svc
}
