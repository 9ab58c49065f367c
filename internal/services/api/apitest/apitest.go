// Package apitest mounts API modules on a throwaway router for handler tests
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"scorebook/internal/core/innings"
	"scorebook/internal/modkit"
	"scorebook/internal/platform/config"
	phttp "scorebook/internal/platform/net/http"
	"scorebook/internal/platform/testkit"
	"scorebook/internal/services/dataset"
)

// Sample decodes testkit.SampleCSV into a dataset
func Sample(t *testing.T) *innings.Dataset {
	t.Helper()
	rows, err := innings.Decode(strings.NewReader(testkit.SampleCSV))
	if err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	return innings.New("sample", rows)
}

// Deps returns module deps backed by a static dataset
func Deps(ds *innings.Dataset) modkit.Deps {
	return modkit.Deps{Cfg: config.New(), Data: dataset.Static{DS: ds}}
}

// Router mounts mods at the root of a fresh router
func Router(mods ...modkit.Module) phttp.Router {
	r := phttp.NewServer(config.New()).Router()
	for _, m := range mods {
		m.MountRoutes(r)
	}
	return r
}

// Do serves one request; a non-nil body is sent as JSON
func Do(r phttp.Router, method, path string, body any, header ...string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	return rec
}

// Data decodes the envelope's data field into T
func Data[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var env struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v (%s)", err, rec.Body.String())
	}
	return env.Data
}

// Envelope decodes the full response envelope
func Envelope(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v (%s)", err, rec.Body.String())
	}
	return env
}
