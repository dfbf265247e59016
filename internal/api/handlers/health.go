package handlers

import (
	"context"
	"log"
	"net/http"
	"sort"
	"time"
)

// Check reports whether one dependency (cache backend, database) is usable.
type Check func(ctx context.Context) error

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	Checks map[string]Check
}

// Live provides a minimal liveness check endpoint.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready runs every dependency check; any failure makes the service unready.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.Checks))
	for name := range h.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	res := map[string]string{"status": "ok"}
	for _, name := range names {
		if err := h.Checks[name](ctx); err != nil {
			log.Printf("readiness check %s failed: %v", name, err)
			res[name] = "unavailable"
			res["status"] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		res[name] = "ok"
	}

	writeJSON(w, r, status, res)
}
