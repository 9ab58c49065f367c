package httpkit

import (
	"net/http"

	phttp "scorebook/internal/platform/net/http"
)

// Get mounts a body-less handler under GET and HEAD
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	hh := Call(h)
	r.Get(path, hh)
	r.Head(path, hh)
}

// GetResponse mounts a Response-returning handler under GET and HEAD
func GetResponse(r Router, path string, h func(*http.Request) Response) {
	hh := Handle(h)
	r.Get(path, hh)
	r.Head(path, hh)
}

// PostJSON mounts a handler that receives a decoded and validated T body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}
