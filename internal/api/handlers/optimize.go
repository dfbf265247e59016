package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"transport-optimizer/internal/api/dto"
	"transport-optimizer/internal/domain"
	"transport-optimizer/internal/platform/obs"
	"transport-optimizer/internal/services"

	"golang.org/x/time/rate"
)

// OptimizeHandler accepts a multipart submission and runs it through the session.
type OptimizeHandler struct {
	Session        *services.Session
	Limiter        *rate.Limiter
	MaxUploadBytes int64
	RejectWhenBusy bool
}

// Optimize reads stock_file, cost_rate and min_quantity and responds with the
// resulting session snapshot.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Limiter != nil && !h.Limiter.Allow() {
		writeError(w, r, http.StatusTooManyRequests, "too many submissions")
		return
	}

	// TrySubmitFile repeats this check under the session lock.
	if h.RejectWhenBusy && h.Session.Busy() {
		writeError(w, r, http.StatusConflict, services.ErrBusy.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid multipart body")
		return
	}
	defer r.MultipartForm.RemoveAll()

	// A missing file is left to the request builder so it surfaces as a
	// session failure like any other validation error.
	var dataset []byte
	filename := domain.DefaultDatasetFilename
	f, hdr, err := r.FormFile("stock_file")
	switch {
	case err == nil:
		defer f.Close()
		dataset, err = io.ReadAll(f)
		if err != nil {
			log.Printf("req_id=%s read stock_file failed: %v", obs.RequestID(r.Context()), err)
			writeError(w, r, http.StatusBadRequest, "unreadable stock_file")
			return
		}
		filename = hdr.Filename
	case !errors.Is(err, http.ErrMissingFile):
		writeError(w, r, http.StatusBadRequest, "invalid stock_file")
		return
	}

	submit := h.Session.SubmitFile
	if h.RejectWhenBusy {
		submit = h.Session.TrySubmitFile
	}
	// Only multipart body fields count; query parameters are ignored.
	st, err := submit(
		r.Context(),
		filename,
		dataset,
		r.PostFormValue("cost_rate"),
		r.PostFormValue("min_quantity"),
	)

	status := http.StatusOK
	var ve *domain.ValidationError
	var se *domain.ServiceError
	switch {
	case err == nil:
	case errors.Is(err, services.ErrBusy):
		writeError(w, r, http.StatusConflict, err.Error())
		return
	case errors.Is(err, services.ErrSuperseded):
		status = http.StatusConflict
	case errors.As(err, &ve):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &se):
		status = http.StatusBadGateway
	default:
		log.Printf("req_id=%s submit optimization failed: %v", obs.RequestID(r.Context()), err)
		status = http.StatusInternalServerError
	}

	writeJSON(w, r, status, dto.FromSessionState(st))
}
