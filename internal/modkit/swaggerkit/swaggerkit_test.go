package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scorebook/internal/platform/config"
	phttp "scorebook/internal/platform/net/http"
)

func TestDocIsValidJSON(t *testing.T) {
	var d struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(doc, &d); err != nil {
		t.Fatalf("openapi.json: %v", err)
	}
	for _, p := range []string{"/overview", "/charts/{name}", "/innings/export.xlsx", "/qa/ask", "/meta/ready"} {
		if _, ok := d.Paths[p]; !ok {
			t.Fatalf("openapi.json missing %s", p)
		}
	}
}

func TestMount(t *testing.T) {
	r := phttp.NewServer(config.New()).Router()
	Mount(r, true)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect || rec.Header().Get("Location") != "/api/docs/" {
		t.Fatalf("GET /api/docs = %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != len(doc) {
		t.Fatalf("GET doc.json = %d (%d bytes)", rec.Code, rec.Body.Len())
	}
}
