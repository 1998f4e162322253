package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	editorSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "editor_submissions_total",
			Help: "Product editor submissions by mode and outcome (success, invalid, failed).",
		},
		[]string{"mode", "outcome"},
	)

	referenceFetchFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "editor_reference_fetch_failures_total",
			Help: "Failed reference data fetches by list.",
		},
		[]string{"list"},
	)

	editorSessionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "editor_sessions",
			Help: "Editor sessions currently held in memory.",
		},
	)
)

func RecordSubmission(mode, outcome string) {
	editorSubmissionsTotal.WithLabelValues(mode, outcome).Inc()
}

func RecordReferenceFetchFailure(list string) {
	referenceFetchFailuresTotal.WithLabelValues(list).Inc()
}

func SetEditorSessions(n int) {
	editorSessionsOpen.Set(float64(n))
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {
			pathPattern := routeLabel(r.URL.Path)
			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pathPattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(time.Since(start).Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(rw, r)
	})
}

// routeLabel collapses numeric and uuid path segments so labels stay bounded.
func routeLabel(path string) string {
	segments := strings.Split(path, "/")

	for i, segment := range segments {
		if _, err := strconv.ParseInt(segment, 10, 64); err == nil {
			segments[i] = "{id}"
		} else if _, err := uuid.Parse(segment); err == nil {
			segments[i] = "{id}"
		}
	}

	return strings.Join(segments, "/")
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
