package middleware_test

import (
	"compress/flate"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "scorebook/internal/platform/errors"
	phttp "scorebook/internal/platform/net/http"
	"scorebook/internal/platform/net/middleware"
)

type observer struct {
	method string
	status int
	calls  int
}

func (o *observer) ObserveRequest(method string, status int, _ time.Duration) {
	o.method, o.status = method, status
	o.calls++
}

func TestAccessLogPassesThroughAndObserves(t *testing.T) {
	obs := &observer{}
	mw := middleware.AccessLog(middleware.AccessLogOptions{Slow: time.Nanosecond, Observer: obs})

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "ok")
	})
	rec := httptest.NewRecorder()
	middleware.RequestID()(mw(next)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/qa/ask", nil))

	if rec.Code != http.StatusCreated || rec.Body.String() != "ok" {
		t.Fatalf("response = %d %q", rec.Code, rec.Body.String())
	}
	if obs.calls != 1 || obs.method != http.MethodPost || obs.status != http.StatusCreated {
		t.Fatalf("observer = %+v", obs)
	}
}

func TestRecoverJSON(t *testing.T) {
	h := middleware.RequestID()(middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-panic")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Code != perr.ErrorCodePanic || env.RequestID != "rid-panic" || rec.Header().Get("X-Request-ID") != "rid-panic" {
		t.Fatalf("envelope = %+v headers = %v", env, rec.Header())
	}
}

func TestCompressGzip(t *testing.T) {
	h := middleware.Compress(flate.DefaultCompression, "image/svg+xml")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = io.WriteString(w, strings.Repeat("<g/>", 1024))
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip, headers = %v", rec.Header())
	}
}

func TestCORSPreflight(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"http://dash.test"}})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/qa/ask", nil)
	req.Header.Set("Origin", "http://dash.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://dash.test" {
		t.Fatalf("Allow-Origin = %q", got)
	}
}

func TestHeartbeatAndStripSlashes(t *testing.T) {
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { _, _ = io.WriteString(w, r.URL.Path) })
	h := middleware.Heartbeat("/health")(middleware.StripSlashes()(final))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "." {
		t.Fatalf("heartbeat = %d %q", rec.Code, rec.Body.String())
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/charts/", nil))
	if rec.Body.String() != "/charts" {
		t.Fatalf("StripSlashes path = %q", rec.Body.String())
	}
	if middleware.NoCache() == nil || middleware.RealIP() == nil || middleware.Timeout(time.Second) == nil {
		t.Fatalf("wrappers should be non-nil")
	}
}
