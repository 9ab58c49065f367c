package http

import "net/http"

// PostJSON mounts a JSON handler for POST with a bound T body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSONHandler(h))
}
