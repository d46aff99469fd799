package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lully_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lully_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	HTTPActiveRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lully_http_active_requests",
		Help: "In-flight HTTP requests.",
	})

	PlanGenerationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lully_plan_generations_total",
		Help: "Day plans generated from normalized inputs.",
	})

	PlanCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lully_plan_cache_hits_total",
		Help: "Plan cache hits.",
	})

	PlanCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lully_plan_cache_misses_total",
		Help: "Plan cache misses.",
	})
)

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
