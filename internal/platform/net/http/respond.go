// Package http is the transport layer: a chi-backed Router seam, the JSON envelope,
// return-style handlers and the server lifecycle.
package http

import (
	"encoding/json"
	stdhttp "net/http"
	"strconv"

	perr "scorebook/internal/platform/errors"
	pnet "scorebook/internal/platform/net"
)

// Envelope is the response body for every JSON endpoint
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, wr := perr.HTTP(err)
	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       wr.Code,
		Error:      wr.Message,
		Field:      wr.Field,
		RequestID:  pnet.RequestID(r.Context()),
	})
}

// Blob is a binary body (chart image, workbook) written as-is
type Blob struct {
	ContentType string
	Filename    string // when set, served as an attachment
	Bytes       []byte
}

// Response is a return-style result for handlers
type Response struct {
	Status int
	Body   any // data, error or Blob
	Header stdhttp.Header
	ETag   string // when set, a matching If-None-Match yields 304
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	if resp.ETag != "" {
		tag := strconv.Quote(resp.ETag)
		w.Header().Set("ETag", tag)
		if r.Header.Get("If-None-Match") == tag {
			w.WriteHeader(stdhttp.StatusNotModified)
			return
		}
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	if b, ok := resp.Body.(Blob); ok {
		w.Header().Set("Content-Type", b.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(b.Bytes)))
		if b.Filename != "" {
			w.Header().Set("Content-Disposition", `attachment; filename="`+b.Filename+`"`)
		}
		w.WriteHeader(status)
		_, _ = w.Write(b.Bytes)
		return
	}

	JSON(w, status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
		Data:       resp.Body,
	})
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Tagged returns a 200 response carrying an ETag
func Tagged(etag string, data any) Response {
	return Response{Status: stdhttp.StatusOK, Body: data, ETag: etag}
}

// File returns a 200 binary response
func File(etag string, b Blob) Response {
	return Response{Status: stdhttp.StatusOK, Body: b, ETag: etag}
}

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }
