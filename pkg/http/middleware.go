package http

import (
	"net/http"
	"time"

	"github.com/oracle-quickstart/oci-datascience-mcp-server/pkg/logging"
)

// loggingResponseWriter captures the status code written by a handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	if lrw.wroteHeader {
		return
	}
	lrw.wroteHeader = true
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// RequestMiddleware logs each request with method, path, status, and duration.
// Health checks are logged at debug level to keep the log quiet.
func RequestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(lrw, r)

		if r.URL.Path == healthEndpoint {
			logging.Debug("%s %s %d %s", r.Method, r.URL.Path, lrw.statusCode, time.Since(start))
			return
		}
		logging.Info("%s %s %d %s", r.Method, r.URL.Path, lrw.statusCode, time.Since(start))
	})
}
