package module_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"scorebook/internal/core/innings"
	"scorebook/internal/core/version"
	perr "scorebook/internal/platform/errors"
	"scorebook/internal/platform/store"
	"scorebook/internal/services/api/apitest"
	metahttp "scorebook/internal/services/api/meta/http"
	metamod "scorebook/internal/services/api/meta/module"
	"scorebook/internal/services/dataset"
)

type downCH struct{ store.Clickhouse }

func (downCH) Ping(context.Context) error { return errors.New("connection refused") }

type failing struct{}

func (failing) Dataset(context.Context) (*innings.Dataset, error) {
	return nil, perr.Unavailablef("dataset not loaded")
}

func TestHealthVersionDataset(t *testing.T) {
	ds := apitest.Sample(t)
	r := apitest.Router(metamod.New(apitest.Deps(ds)))

	rec := apitest.Do(r, http.MethodGet, "/meta/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}
	if h := apitest.Data[metahttp.HealthResponse](t, rec); !h.OK || h.Service != metamod.ServiceName {
		t.Fatalf("health = %+v", h)
	}
	if cc := rec.Header().Get("Cache-Control"); cc == "" {
		t.Fatalf("meta responses should carry no-cache headers")
	}

	rec = apitest.Do(r, http.MethodGet, "/meta/version", nil)
	if v := apitest.Data[version.BuildInfo](t, rec); v.Service != "scorebook" {
		t.Fatalf("version = %+v", v)
	}

	rec = apitest.Do(r, http.MethodGet, "/meta/dataset", nil)
	got := apitest.Data[metahttp.DatasetResponse](t, rec)
	if got.ID != ds.ID().String() || got.Rows != 3 || got.Source != "sample" || got.LoadedAt == "" {
		t.Fatalf("dataset = %+v", got)
	}
}

func TestReady(t *testing.T) {
	r := apitest.Router(metamod.New(apitest.Deps(apitest.Sample(t))))
	rec := apitest.Do(r, http.MethodGet, "/meta/ready", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("ready = %d (%s)", rec.Code, rec.Body.String())
	}
	ready := apitest.Data[metahttp.ReadyResponse](t, rec)
	if ready.Status != "ok" || len(ready.Checks) != 3 {
		t.Fatalf("ready = %+v", ready)
	}
	if ready.Checks[0].Status != "ok" || ready.Checks[1].Status != "skipped" || ready.Checks[2].Status != "skipped" {
		t.Fatalf("checks = %+v", ready.Checks)
	}

	deps := apitest.Deps(apitest.Sample(t))
	deps.Store = &store.Store{CH: downCH{}}
	rec = apitest.Do(apitest.Router(metamod.New(deps)), http.MethodGet, "/meta/ready", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("ready with ch down = %d, want 503", rec.Code)
	}
	ready = apitest.Data[metahttp.ReadyResponse](t, rec)
	if ready.Status != "fail" || ready.Checks[2].Error != "connection refused" {
		t.Fatalf("ready = %+v", ready)
	}
}

func TestDatasetUnavailable(t *testing.T) {
	deps := apitest.Deps(nil)
	deps.Data = failing{}
	r := apitest.Router(metamod.New(deps))
	if rec := apitest.Do(r, http.MethodGet, "/meta/dataset", nil); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("dataset = %d, want 503", rec.Code)
	}
	if rec := apitest.Do(r, http.MethodGet, "/meta/ready", nil); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("ready = %d, want 503", rec.Code)
	}
}

var _ dataset.Provider = failing{}
