package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"

	"github.com/tracecase/trace/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

// loggingMiddleware assigns a request id, then logs and times every request.
// routes is consulted only to label metrics by pattern, not to dispatch.
func loggingMiddleware(routes *http.ServeMux, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, reqID)

		m := httpsnoop.CaptureMetrics(next, w, r)

		_, route := routes.Handler(r)
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDuration.
			WithLabelValues(route, strconv.Itoa(m.Code)).
			Observe(float64(m.Duration.Microseconds()) / 1000)

		slog.Info("http request",
			"request_id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"bytes", m.Written,
			"duration", m.Duration,
		)
	})
}
