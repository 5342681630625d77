package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:    http.StatusUnauthorized,
	service.ErrForbidden:       http.StatusForbidden,
	service.ErrProjectNotFound: http.StatusNotFound,
	service.ErrUserNotFound:    http.StatusNotFound,
	validators.ErrInvalidInput: http.StatusBadRequest,
	ErrMalformedRequest:        http.StatusBadRequest,
	ErrMissingQuery:            http.StatusBadRequest,
	ErrRequestTooLarge:         http.StatusRequestEntityTooLarge,
	ErrTooManyRequests:         http.StatusTooManyRequests,
	errNotFound:                http.StatusNotFound,
}

// statusFromError returns the HTTP status and the client-facing message for
// err. Validation errors keep their details; unknown errors are reported as
// internal_error.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if target == validators.ErrInvalidInput {
				return status, err.Error()
			}
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, service.ErrInternal.Error()
}
