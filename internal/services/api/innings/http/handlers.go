// Package http provides http transport for the innings table
package http

import (
	stdhttp "net/http"

	"scorebook/internal/core/workbook"
	"scorebook/internal/modkit/httpkit"
	"scorebook/internal/platform/net/http/bind"
	"scorebook/internal/services/api/innings/domain"
)

// Register mounts innings endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// table rows with optional exact-match filters
	httpkit.GetResponse(r, "/", h.list)

	// same rows as a workbook download
	httpkit.GetResponse(r, "/export.xlsx", h.export)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /innings Innings inningsList
// @Summary Innings table in source order
// @Tags Innings
// @Produce json
// @Param opponent query string false "exact opponent"
// @Param match query string false "exact match type"
// @Param year query int false "calendar year"
// @Success 200 {array} domain.Row "ok"
// @Failure 400 {object} httpkit.Envelope "bad filter"
// @Router /innings [get]
func (h *handlers) list(r *stdhttp.Request) httpkit.Response {
	q, err := bind.ParseQuery[domain.Query](r)
	if err != nil {
		return httpkit.Error(err)
	}
	rows, v, err := h.svc.List(r.Context(), q)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.Tagged(v, rows)
}

// swagger:route GET /innings/export.xlsx Innings inningsExport
// @Summary Innings table and summary as an xlsx workbook
// @Tags Innings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router /innings/export.xlsx [get]
func (h *handlers) export(r *stdhttp.Request) httpkit.Response {
	q, err := bind.ParseQuery[domain.Query](r)
	if err != nil {
		return httpkit.Error(err)
	}
	wb, v, err := h.svc.Export(r.Context(), q)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.File(v, httpkit.Blob{
		ContentType: workbook.ContentType,
		Filename:    wb.Filename,
		Bytes:       wb.Bytes,
	})
}
