// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/agency-portal/internal/validators"
)

var (
	// ErrMissingQuery is returned when a GraphQL request carries no query.
	ErrMissingQuery = errors.New("query is required")

	// ErrMalformedRequest is returned for bodies or parameters that cannot
	// be decoded.
	ErrMalformedRequest = errors.New("malformed request")

	ErrTooManyRequests = errors.New("too_many_requests")
	ErrRequestTooLarge = errors.New("request_too_large")

	errNotFound = errors.New("not_found")

	ErrMalformedProjectID = fmt.Errorf("%w: projectId must be a positive integer", validators.ErrInvalidInput)
)
