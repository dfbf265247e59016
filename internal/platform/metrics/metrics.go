package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry exposed on /metrics.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts inbound requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// OptimizerCalls counts outbound submissions by outcome (ok, service_error, transport_error).
	OptimizerCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimizer_calls_total", Help: "Optimization service submissions by outcome."},
		[]string{"outcome"},
	)
	OptimizerLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "optimizer_call_duration_seconds", Help: "Optimization service call duration in seconds.", Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}},
	)

	// CacheLookups counts response cache lookups by result (hit, miss, error).
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "result_cache_lookups_total", Help: "Optimizer response cache lookups by result."},
		[]string{"result"},
	)

	// SessionTransitions counts state machine transitions by target phase.
	SessionTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "session_transitions_total", Help: "Session state transitions by phase."},
		[]string{"phase"},
	)
	StaleResponses = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "session_stale_responses_total", Help: "Responses discarded because a newer submission superseded them."},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(OptimizerCalls)
		Registry.MustRegister(OptimizerLatency)
		Registry.MustRegister(CacheLookups)
		Registry.MustRegister(SessionTransitions)
		Registry.MustRegister(StaleResponses)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
