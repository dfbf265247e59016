package handlers

import (
	"errors"
	"log"
	"mime"
	"net/http"
	"strconv"
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/platform/obs"
	"transport-optimizer/internal/report"
)

// Export streams the grouped CSV of the current result as a download.
// Without a result it answers 409 and leaves the session untouched.
func (h *SessionHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := h.Session.Export()
	if err != nil {
		var ee *domain.ExportError
		if errors.As(err, &ee) {
			writeError(w, r, http.StatusConflict, ee.Message)
			return
		}
		log.Printf("req_id=%s export failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", mime.FormatMediaType(report.ExportContentType, map[string]string{"charset": "utf-8"}))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": report.ExportFilename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Printf("req_id=%s write export failed: %v", obs.RequestID(r.Context()), err)
	}
}
