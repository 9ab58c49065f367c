// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"scorebook/internal/core/version"
	"scorebook/internal/modkit/httpkit"
	"scorebook/internal/services/dataset"
)

// Pinger is satisfied by backends that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Data        dataset.Provider
	PG          Pinger // nil when the source is not postgres
	CH          Pinger // nil when the source is not clickhouse
	ReadyWithin time.Duration
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ReadyWithin <= 0 {
		d.ReadyWithin = 2 * time.Second
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.GetResponse(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/dataset", h.dataset)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"scorebook-api"`
	Started string `json:"started"  example:"2026-10-19T09:00:00Z"`
	Now     string `json:"now"      example:"2026-10-19T09:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"dataset"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-19T09:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"scorebook-api"`
	Started string `json:"started" example:"2026-10-19T09:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// DatasetResponse describes the loaded dataset
type DatasetResponse struct {
	ID       string `json:"id"        example:"0b7f2c7e-3f6e-4c55-9a53-3c1f0c6f1e2a"`
	Source   string `json:"source"    example:"csv:Sources/Source.csv"`
	LoadedAt string `json:"loaded_at" example:"2026-10-19T09:00:01Z"`
	Rows     int    `json:"rows"      example:"463"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Liveness check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe: dataset loaded and the backing database reachable
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Failure 503 {object} ReadyResponse "not ready"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) httpkit.Response {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ReadyWithin)
	defer cancel()

	check := func(name string, ping func(stdctx.Context) error) ReadyCheck {
		if ping == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if err := ping(ctx); err != nil {
			return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
		}
		return ReadyCheck{Name: name, Status: "ok"}
	}
	pingOf := func(p Pinger) func(stdctx.Context) error {
		if p == nil {
			return nil
		}
		return p.Ping
	}

	checks := []ReadyCheck{
		check("dataset", func(ctx stdctx.Context) error {
			_, err := h.deps.Data.Dataset(ctx)
			return err
		}),
		check("pg", pingOf(h.deps.PG)),
		check("ch", pingOf(h.deps.CH)),
	}

	out := ReadyResponse{Status: "ok", Checks: checks, Now: time.Now().UTC().Format(time.RFC3339)}
	status := http.StatusOK
	for _, c := range checks {
		if c.Status == "fail" {
			out.Status = "fail"
			status = http.StatusServiceUnavailable
		}
	}
	return httpkit.Response{Status: status, Body: out}
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/dataset Meta metaDataset
// @Summary Identity and size of the loaded dataset
// @Tags Meta
// @Produce json
// @Success 200 {object} DatasetResponse "ok"
// @Failure 503 {object} httpkit.Envelope "dataset not loaded"
// @Router /meta/dataset [get]
func (h *handlers) dataset(r *http.Request) (any, error) {
	ds, err := h.deps.Data.Dataset(r.Context())
	if err != nil {
		return nil, err
	}
	return DatasetResponse{
		ID:       ds.ID().String(),
		Source:   ds.Source(),
		LoadedAt: ds.LoadedAt().Format(time.RFC3339),
		Rows:     ds.Len(),
	}, nil
}
