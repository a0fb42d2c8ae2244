package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/jacklucas/notes-api/internal/logger"
	"github.com/jacklucas/notes-api/internal/service"
	"github.com/jacklucas/notes-api/internal/store"
	"github.com/jacklucas/notes-api/internal/utils"
	"github.com/jacklucas/notes-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:            http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,
	ErrInvalidJSONBody:               http.StatusBadRequest,

	store.ErrNoteNotFound: http.StatusNotFound,
	store.ErrTagNotFound:  http.StatusNotFound,
	store.ErrTagNameTaken: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			// transient database failures are worth a client retry
			if status == http.StatusInternalServerError && store.IsRetryable(err) {
				return http.StatusServiceUnavailable
			}
			return status
		}
	}
	if store.IsRetryable(err) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and renders the uniform JSON error
// body. Validation failures additionally carry per-field details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	body := models.ErrorResponse{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   err.Error(),
		Path:      r.URL.Path,
		Timestamp: time.Now().UTC(),
	}

	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		body.FieldErrors = vErr.Fields
	}

	if status >= http.StatusInternalServerError {
		// do not leak internals to the client on server-side failures
		body.Message = http.StatusText(status)
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
