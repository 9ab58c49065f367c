// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "scorebook/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the return-style handler result
	Response = phttp.Response

	// Blob is a binary response body
	Blob = phttp.Blob

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// Tagged returns a 200 response with an ETag, so clients can revalidate
func Tagged(etag string, data any) Response { return phttp.Tagged(etag, data) }

// File returns a 200 binary response with an ETag
func File(etag string, b Blob) Response { return phttp.File(etag, b) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.JSONHandlerNoBody(fn) }

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Param returns a named path parameter such as {name}
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }
