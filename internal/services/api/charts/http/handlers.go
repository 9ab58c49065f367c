// Package http provides http transport for charts
package http

import (
	stdhttp "net/http"
	"path"
	"strings"

	"scorebook/internal/core/plot"
	"scorebook/internal/modkit/httpkit"
	"scorebook/internal/services/api/charts/domain"
)

// Register mounts chart endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// all chart series
	httpkit.GetResponse(r, "/", h.list)

	// one chart series, or an image when the name carries .svg or .png
	httpkit.GetResponse(r, "/{name}", h.one)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /charts Charts chartsList
// @Summary All dashboard charts as labelled series
// @Tags Charts
// @Produce json
// @Success 200 {array} domain.Chart "ok"
// @Router /charts [get]
func (h *handlers) list(r *stdhttp.Request) httpkit.Response {
	out, v, err := h.svc.List(r.Context())
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.Tagged(string(v), out)
}

// swagger:route GET /charts/{name} Charts chartsOne
// @Summary One chart as a series, or rendered as {name}.svg / {name}.png
// @Tags Charts
// @Produce json,image/svg+xml,image/png
// @Param name path string true "runs_over_time, runs_by_opponent, runs_by_match or runs_by_year"
// @Success 200 {object} domain.Chart "ok"
// @Failure 404 {object} httpkit.Envelope "unknown chart"
// @Router /charts/{name} [get]
func (h *handlers) one(r *stdhttp.Request) httpkit.Response {
	raw := httpkit.Param(r, "name")
	ext := path.Ext(raw)
	name := plot.Name(strings.TrimSuffix(raw, ext))

	if ext == "" {
		out, v, err := h.svc.Get(r.Context(), name)
		if err != nil {
			return httpkit.Error(err)
		}
		return httpkit.Tagged(string(v), out)
	}

	f, err := plot.ParseFormat(strings.TrimPrefix(ext, "."))
	if err != nil {
		return httpkit.Error(err)
	}
	img, v, err := h.svc.Render(r.Context(), name, f)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.File(string(v), httpkit.Blob{
		ContentType: img.Format.ContentType(),
		Bytes:       img.Bytes,
	})
}
