package middleware

import (
	"net/http"
	"time"

	"scorebook/internal/platform/logger"
	pnet "scorebook/internal/platform/net"
)

// RequestObserver receives one call per finished request
type RequestObserver interface {
	ObserveRequest(method string, status int, elapsed time.Duration)
}

// AccessLogOptions configures AccessLog
type AccessLogOptions struct {
	// Slow logs requests taking >= Slow at warn; 0 disables
	Slow time.Duration
	// Observer, when set, also gets every request (metrics)
	Observer RequestObserver
}

type captureWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	n, err := cw.ResponseWriter.Write(b)
	cw.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer
func (cw *captureWriter) Unwrap() http.ResponseWriter { return cw.ResponseWriter }

// AccessLog binds the request id to the request logger and logs method, path,
// status, elapsed and bytes once the handler returns. Mount after RequestID.
func AccessLog(opt AccessLogOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.WithRequest(r.Context(), pnet.RequestID(r.Context()))
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(cw, r.WithContext(ctx))

			elapsed := time.Since(start)
			if opt.Observer != nil {
				opt.Observer.ObserveRequest(r.Method, cw.status, elapsed)
			}
			log := logger.C(ctx)
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn()
			}
			evt.Int("status", cw.status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("bytes", cw.bytes).
				Msg("request done")
		})
	}
}
