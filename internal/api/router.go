package api

import (
	"net/http"
	"transport-optimizer/internal/api/handlers"
	"transport-optimizer/internal/platform/metrics"
	"transport-optimizer/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Options tunes the HTTP facade.
type Options struct {
	MaxUploadBytes int64
	SubmitRate     float64
	SubmitBurst    int
	RejectWhenBusy bool
	Checks         map[string]handlers.Check
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(session *services.Session, opts Options) http.Handler {
	mux := http.NewServeMux()

	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 32 << 20
	}

	var limiter *rate.Limiter
	if opts.SubmitRate > 0 {
		burst := opts.SubmitBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.SubmitRate), burst)
	}

	healthHandler := &handlers.HealthHandler{Checks: opts.Checks}
	optimizeHandler := &handlers.OptimizeHandler{
		Session:        session,
		Limiter:        limiter,
		MaxUploadBytes: opts.MaxUploadBytes,
		RejectWhenBusy: opts.RejectWhenBusy,
	}
	sessionHandler := &handlers.SessionHandler{Session: session}

	metrics.RegisterDefault()

	mux.HandleFunc("/health", healthHandler.Live)
	mux.HandleFunc("/ready", healthHandler.Ready)
	mux.HandleFunc("/optimize", optimizeHandler.Optimize)
	mux.HandleFunc("/session", sessionHandler.State)
	mux.HandleFunc("/session/stream", sessionHandler.Stream)
	mux.HandleFunc("/export", sessionHandler.Export)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
