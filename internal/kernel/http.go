// Package kernel builds the HTTP middleware stack every BizDesk process
// shares: metrics, panic recovery, request ids, logging, CORS and rate
// limiting, in that order. Routes are mounted by the caller.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/bizdesk/pkg/metrics"
	"github.com/shashiranjanraj/bizdesk/pkg/middleware"
	"github.com/shashiranjanraj/bizdesk/pkg/reqid"
	"github.com/shashiranjanraj/bizdesk/pkg/router"
)

// NewRouter returns a router with the default middleware stack plus the
// operational endpoints (/health, /metrics) already mounted.
func NewRouter() *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(200, time.Minute),
	)

	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	return r
}
