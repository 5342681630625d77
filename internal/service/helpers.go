package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/validators"
)

// storeError translates repository sentinels into API errors. notFound is
// returned for rows that are missing or hidden by an ownership filter.
func storeError(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return notFound
	case errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", validators.ErrInvalidInput, err)
	default:
		return err
	}
}

// requireString reports a missing or blank value of a field that is optional
// on update but mandatory on create.
func requireString(value *string, field string) error {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fmt.Errorf("%w: %s is required", validators.ErrInvalidInput, field)
	}
	return nil
}

// trimPtr trims a string in place. Nil is left as is.
func trimPtr(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}
