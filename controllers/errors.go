package controllers

import (
	"errors"
	"net/http"

	"github.com/satyam-pandey/scan-to-order/services"
	"github.com/satyam-pandey/scan-to-order/store"
)

// statusForError maps workflow and gateway errors onto HTTP statuses.
// Business-rule failures are the client's fault, integrity violations are
// conflicts, availability problems are retryable 503s, everything else is
// an opaque 500.
func statusForError(err error) int {
	switch {
	case services.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrIntegrityViolation):
		return http.StatusConflict
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
