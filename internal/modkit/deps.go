// Package modkit provides module wiring and core deps
package modkit

import (
	"scorebook/internal/platform/config"
	"scorebook/internal/platform/logger"
	"scorebook/internal/platform/metrics"
	"scorebook/internal/platform/store"
	"scorebook/internal/services/dataset"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Data    dataset.Provider
	Metrics *metrics.Metrics // nil disables instrumentation
	Store   *store.Store     // nil or empty for the csv source
}

// Validate panics when a required dependency is missing; modules call it from New
func (d Deps) Validate(module string) {
	if d.Data == nil {
		panic(module + ": modkit.Deps.Data is required")
	}
}
