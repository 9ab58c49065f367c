// Package http provides http transport for the overview strip
package http

import (
	stdhttp "net/http"

	"scorebook/internal/modkit/httpkit"
	"scorebook/internal/services/api/overview/domain"
)

// Register mounts the overview endpoint on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.GetResponse(r, "/", h.get)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /overview Overview overviewGet
// @Summary KPI strip for the loaded dataset
// @Tags Overview
// @Produce json
// @Success 200 {object} domain.Overview "ok"
// @Success 304 "dataset unchanged"
// @Router /overview [get]
func (h *handlers) get(r *stdhttp.Request) httpkit.Response {
	out, err := h.svc.Overview(r.Context())
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.Tagged(out.DatasetID, out)
}
