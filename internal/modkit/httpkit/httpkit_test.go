package httpkit_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"scorebook/internal/modkit/httpkit"
	"scorebook/internal/platform/config"
	phttp "scorebook/internal/platform/net/http"
)

func newRouter() phttp.Router { return phttp.NewServer(config.New()).Router() }

func serve(r phttp.Router, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestGetMountsHead(t *testing.T) {
	r := newRouter()
	httpkit.Get(r, "/total", func(*http.Request) (any, error) { return 227, nil })
	httpkit.GetResponse(r, "/tagged", func(*http.Request) httpkit.Response { return httpkit.Tagged("v1", "x") })

	for _, p := range []string{"/total", "/tagged"} {
		if rec := serve(r, http.MethodGet, p); rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d", p, rec.Code)
		}
		if rec := serve(r, http.MethodHead, p); rec.Code != http.StatusOK {
			t.Fatalf("HEAD %s = %d", p, rec.Code)
		}
	}
}

func TestCallMapsErrors(t *testing.T) {
	r := newRouter()
	httpkit.Get(r, "/boom", func(*http.Request) (any, error) { return nil, errors.New("boom") })
	if rec := serve(r, http.MethodGet, "/boom"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("GET /boom = %d, want 500", rec.Code)
	}
}

func TestMountAPIV1AndRootGroup(t *testing.T) {
	r := newRouter()
	httpkit.MountAPIV1(r, httpkit.CommonStack(httpkit.StackOptions{}), func(api httpkit.Router) {
		httpkit.MountUnder(api, "/", nil, func(g httpkit.Router) {
			httpkit.Get(g, "/ping", func(*http.Request) (any, error) { return "pong", nil })
		})
	})

	rec := serve(r, http.MethodGet, "/api/v1/ping")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/ping = %d", rec.Code)
	}
	if rec := serve(r, http.MethodGet, "/api/v1/ping/"); rec.Code != http.StatusOK {
		t.Fatalf("trailing slash = %d, want 200", rec.Code)
	}
}

func TestCommonStack(t *testing.T) {
	if got := len(httpkit.CommonStack(httpkit.StackOptions{})); got != 8 {
		t.Fatalf("CommonStack = %d middlewares, want 8", got)
	}
}

func TestParam(t *testing.T) {
	r := newRouter()
	httpkit.Get(r, "/charts/{name}", func(req *http.Request) (any, error) {
		return httpkit.Param(req, "name"), nil
	})
	rec := serve(r, http.MethodGet, "/charts/runs_by_year")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET = %d", rec.Code)
	}
}
