package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "scorebook/internal/platform/errors"
	pnet "scorebook/internal/platform/net"
	phttp "scorebook/internal/platform/net/http"
)

func reqWithID(method, path, id string) *http.Request {
	r := httptest.NewRequest(method, path, nil)
	return r.WithContext(pnet.WithRequestID(r.Context(), id))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestHandleOK(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.OK(map[string]int{"total_runs": 227})
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithID(http.MethodGet, "/", "rid-1"))

	env := decode(t, rec)
	if rec.Code != http.StatusOK || env.StatusCode != http.StatusOK || env.RequestID != "rid-1" {
		t.Fatalf("bad envelope: %d %+v", rec.Code, env)
	}
	if m, ok := env.Data.(map[string]any); !ok || m["total_runs"] != float64(227) {
		t.Fatalf("data = %#v", env.Data)
	}
}

func TestHandleError(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Error(perr.WithField(perr.Validationf("question is required"), "question"))
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithID(http.MethodPost, "/", "rid-2"))

	env := decode(t, rec)
	if rec.Code != http.StatusBadRequest || env.Code != perr.ErrorCodeValidation {
		t.Fatalf("status/code = %d/%v", rec.Code, env.Code)
	}
	if env.Error != "question is required" || env.Field != "question" || env.Data != nil {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandleETag(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.Tagged("ds-1", []int{1, 2}) })

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	tag := rec.Header().Get("ETag")
	if rec.Code != http.StatusOK || tag != `"ds-1"` {
		t.Fatalf("first response %d etag %q", rec.Code, tag)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", tag)
	rec = httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusNotModified || rec.Body.Len() != 0 {
		t.Fatalf("conditional response %d body %q", rec.Code, rec.Body.String())
	}
}

func TestHandleBlob(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.File("", phttp.Blob{ContentType: "image/svg+xml", Filename: "runs.svg", Bytes: []byte("<svg/>")})
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Header().Get("Content-Type") != "image/svg+xml" || rec.Body.String() != "<svg/>" {
		t.Fatalf("blob response %q %q", rec.Header().Get("Content-Type"), rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="runs.svg"` {
		t.Fatalf("Content-Disposition = %q", got)
	}
}

func TestRespondHelpers(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondError(rec, reqWithID(http.MethodGet, "/", "rid-3"), perr.NotFoundf("chart %q", "pies"))
	if env := decode(t, rec); rec.Code != http.StatusNotFound || env.Code != perr.ErrorCodeNotFound || env.RequestID != "rid-3" {
		t.Fatalf("RespondError = %d %+v", rec.Code, env)
	}
}
