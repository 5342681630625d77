package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidInput prefixes every rule violation. Its text is part of the
	// public API error contract.
	ErrInvalidInput = errors.New("invalid_input")

	ErrNoFieldsToUpdate = fmt.Errorf("%w: at least one field must be provided for update", ErrInvalidInput)
)
