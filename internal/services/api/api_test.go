package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"scorebook/internal/modkit/module"
	"scorebook/internal/platform/metrics"
	kit "scorebook/internal/platform/testkit"
	"scorebook/internal/services/api"
	"scorebook/internal/services/api/apitest"
	qadomain "scorebook/internal/services/api/qa/domain"
)

func TestMountServesVersionedRoutes(t *testing.T) {
	deps := apitest.Deps(apitest.Sample(t))
	deps.Metrics = metrics.New()
	r := apitest.Router()
	module.Reset()
	t.Cleanup(module.Reset)
	api.Mount(r, api.Options{Deps: deps, EnableMetrics: true, EnableSwagger: true})

	for _, p := range []string{
		"/api/v1/meta/health",
		"/api/v1/overview",
		"/api/v1/charts",
		"/api/v1/charts/runs_over_time.svg",
		"/api/v1/innings?year=2010",
		"/api/v1/qa/intents",
	} {
		if rec := apitest.Do(r, http.MethodGet, p, nil); rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d (%s)", p, rec.Code, rec.Body.String())
		}
	}

	rec := apitest.Do(r, http.MethodPost, "/api/v1/qa/ask", qadomain.AskInput{Question: "sum of runs"})
	if got := apitest.Data[qadomain.Answer](t, rec); got.Answer != "Total runs scored: 227" {
		t.Fatalf("ask = %+v", got)
	}

	rec = apitest.Do(r, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d", rec.Code)
	}
	kit.MustContain(t, rec.Body.String(), `scorebook_qa_questions_total{intent="total_runs"} 1`)
	kit.MustContain(t, rec.Body.String(), "scorebook_http_requests_total")

	rec = apitest.Do(r, http.MethodGet, "/api/docs/doc.json", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET doc.json = %d", rec.Code)
	}
	var doc struct {
		OpenAPI string         `json:"openapi"`
		Paths   map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json: %v", err)
	}
	if _, ok := doc.Paths["/qa/ask"]; !ok || doc.OpenAPI == "" {
		t.Fatalf("doc.json missing /qa/ask: %v", doc.Paths)
	}

	if diff := cmp.Diff([]string{"charts", "innings", "overview", "qa"}, module.Names()); diff != "" {
		t.Fatalf("registered ports (-want +got):\n%s", diff)
	}
}

func TestOptionalSurfacesOff(t *testing.T) {
	r := apitest.Router()
	module.Reset()
	t.Cleanup(module.Reset)
	api.Mount(r, api.Options{Deps: apitest.Deps(apitest.Sample(t))})

	for _, p := range []string{"/metrics", "/api/docs/doc.json", "/debug/pprof/"} {
		if rec := apitest.Do(r, http.MethodGet, p, nil); rec.Code != http.StatusNotFound {
			t.Fatalf("GET %s = %d, want 404", p, rec.Code)
		}
	}
}
