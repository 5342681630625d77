package graph

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/validators"
)

// Error is returned to API clients. Its message is the whole contract.
type Error struct {
	message string
}

func (e *Error) Error() string {
	return e.message
}

// publicErrors is checked in order; the first match names the error.
var publicErrors = []error{
	service.ErrUnauthorized,
	service.ErrForbiddenSelfDelete,
	service.ErrForbidden,
	service.ErrUserNotFound,
	service.ErrProjectNotFound,
	service.ErrTaskNotFound,
	service.ErrMilestoneNotFound,
	service.ErrFileNotFound,
	service.ErrCaseNotFound,
	service.ErrEmailTaken,
	service.ErrSlugTaken,
	service.ErrInvalidStatusTransition,
	service.ErrWrongPassword,
	validators.ErrInvalidInput,
}

// publicError converts a service error into the message clients see.
// Validation errors keep their details; anything unknown is logged and
// becomes internal_error.
func publicError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	for _, target := range publicErrors {
		if !errors.Is(err, target) {
			continue
		}
		if target == validators.ErrInvalidInput {
			return &Error{message: invalidInputMessage(err)}
		}
		return &Error{message: target.Error()}
	}

	logger.FromContext(ctx).Err(err).Msg("resolver failed")
	return &Error{message: service.ErrInternal.Error()}
}

// invalidInputMessage drops wrapping prefixes so the message starts with
// "invalid_input".
func invalidInputMessage(err error) string {
	message := err.Error()
	if i := strings.Index(message, validators.ErrInvalidInput.Error()); i > 0 {
		return message[i:]
	}
	return message
}
