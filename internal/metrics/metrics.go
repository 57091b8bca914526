// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"adpacer/internal/core/port"
)

var (
	// Routine passes partitioned by routine and outcome (ok, error, skipped).
	RoutineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adpacer_routine_runs_total",
			Help: "Total number of routine passes",
		},
		[]string{"routine", "outcome"},
	)

	RoutineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adpacer_routine_duration_seconds",
			Help:    "Routine pass latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"routine"},
	)

	// Entities handled by routine passes, partitioned by result
	// (scanned, changed, failed).
	RoutineEntities = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adpacer_routine_entities_total",
			Help: "Entities handled by routine passes",
		},
		[]string{"routine", "result"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	httpInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)
)

// Middleware records request metrics. The route label is the chi route
// pattern, which keeps cardinality low.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		labels := prometheus.Labels{
			"method": r.Method,
			"route":  route,
			"status": strconv.Itoa(status),
		}
		httpRequestsTotal.With(labels).Inc()
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	})
}

// ObservePass records the outcome of one routine pass.
func ObservePass(stats port.PassStats, err error, took time.Duration) {
	routine := string(stats.Routine)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	RoutineRuns.WithLabelValues(routine, outcome).Inc()
	RoutineDuration.WithLabelValues(routine).Observe(took.Seconds())
	RoutineEntities.WithLabelValues(routine, "scanned").Add(float64(stats.Scanned))
	RoutineEntities.WithLabelValues(routine, "changed").Add(float64(stats.Changed))
	RoutineEntities.WithLabelValues(routine, "failed").Add(float64(stats.Failed))
}

// ObserveSkipped records a pass that did not run because another one held
// the routine's lock.
func ObserveSkipped(routine port.Routine) {
	RoutineRuns.WithLabelValues(string(routine), "skipped").Inc()
}
