// Package http provides http transport for Q&A
package http

import (
	stdhttp "net/http"

	"scorebook/internal/modkit/httpkit"
	"scorebook/internal/services/api/qa/domain"
)

// Register mounts Q&A endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.AskInput](r, "/ask", h.ask)
	httpkit.Get(r, "/intents", h.intents)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /qa/ask QA qaAsk
// @Summary Answer a free-text question about the innings
// @Tags QA
// @Accept json
// @Produce json
// @Param payload body domain.AskInput true "Question"
// @Success 200 {object} domain.Answer "ok"
// @Failure 400 {object} httpkit.Envelope "missing or oversized question"
// @Router /qa/ask [post]
func (h *handlers) ask(r *stdhttp.Request, in domain.AskInput) (any, error) {
	return h.svc.Ask(r.Context(), in.Question)
}

// swagger:route GET /qa/intents QA qaIntents
// @Summary Supported question shapes in priority order
// @Tags QA
// @Produce json
// @Success 200 {array} domain.Intent "ok"
// @Router /qa/intents [get]
func (h *handlers) intents(_ *stdhttp.Request) (any, error) {
	return h.svc.Intents(), nil
}
