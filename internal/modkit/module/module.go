// Package module defines the minimal contract for a modkit module and a port registry
package module

import (
	phttp "scorebook/internal/platform/net/http"
)

// Module is what api.Mount composes
// kept in its own package so feature modules can import it without pulling modkit deps
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
