package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"scorebook/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Observer    middleware.RequestObserver
	Slow        time.Duration
	Timeout     time.Duration
}

// CommonStack is the middleware every /api/v1 route runs behind.
// NoCache is not part of it: it strips If-None-Match and would defeat ETag revalidation.
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow, Observer: o.Observer}),
		middleware.RecoverJSON,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed, "application/json", "image/svg+xml"),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
}
