// Package middleware is the HTTP middleware stack shared by the API and
// the dashboard routes: request logging, panic recovery, auth, CORS and
// per-IP rate limiting.
package middleware

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/bizdesk/pkg/logger"
	"github.com/shashiranjanraj/bizdesk/pkg/reqid"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logger logs each request with method, path, status, duration and client
// IP, tagged with the request_id injected by reqid.Middleware. It also
// seeds the request context with a pre-tagged logger, so handlers calling
// logger.WithCtx get the request_id for free.
//
// Wire reqid.Middleware before this one so the ID exists when Logger runs:
//
//	r.Use(reqid.Middleware())
//	r.Use(middleware.Logger)
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rid := reqid.FromCtx(r.Context())

		reqLog := logger.L.With("request_id", rid)
		r = r.WithContext(logger.InjectLogger(r.Context(), reqLog))

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		reqLog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", clientIP(r),
		)
	})
}
