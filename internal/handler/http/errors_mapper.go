package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stay/internal/logger"
	"github.com/MKhiriev/go-stay/internal/service"
	"github.com/MKhiriev/go-stay/internal/store"
	"github.com/MKhiriev/go-stay/internal/utils"
	"github.com/MKhiriev/go-stay/models"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is checked in order; the first match wins. Errors that match
// nothing are answered with 500.
var errorStatuses = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusUnprocessableEntity},
	{service.ErrWrongPassword, http.StatusUnprocessableEntity},
	{store.ErrEmailAlreadyExists, http.StatusUnprocessableEntity},

	{ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrPlaceNotFound, http.StatusNotFound},
	{store.ErrBookingNotFound, http.StatusNotFound},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidMultipart, http.StatusBadRequest},
	{utils.ErrEmptyBody, http.StatusBadRequest},
	{models.ErrConflictingGuestCount, http.StatusBadRequest},
	{service.ErrInvalidLink, http.StatusBadRequest},
	{service.ErrNoFilesProvided, http.StatusBadRequest},
	{service.ErrTooManyFiles, http.StatusBadRequest},
	{service.ErrFileTooLarge, http.StatusBadRequest},

	{service.ErrRemoteFetchFailed, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// statusFromError returns the response status for err and the sentinel that
// matched it, or nil for unclassified errors.
func statusFromError(err error) (int, error) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status, es.err
		}
	}
	return http.StatusInternalServerError, nil
}

// appHandler is a route handler that reports failures instead of writing
// them.
type appHandler func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to [http.HandlerFunc]; every returned error is answered
// by respondError.
func (h *Handler) handle(fn appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.respondError(w, r, err)
		}
	}
}

// respondError writes err as a plain-text response. Only the matched
// sentinel's text is exposed; unclassified errors are logged and answered
// with the generic status text.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, sentinel := statusFromError(err)
	message := http.StatusText(status)
	if sentinel != nil && status != http.StatusGatewayTimeout {
		message = sentinel.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, message, status)
}
