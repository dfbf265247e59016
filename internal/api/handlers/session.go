package handlers

import (
	"net/http"
	"transport-optimizer/internal/api/dto"
	"transport-optimizer/internal/services"
)

// SessionHandler exposes the session state and its export.
type SessionHandler struct {
	Session *services.Session
}

func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromSessionState(h.Session.State()))
}
