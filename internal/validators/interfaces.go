// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and enforcement of business
// rules for everything that enters the portal through the API.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - InputValidator: the go-playground/validator backed implementation with
//     the portal's custom tags (slug, inn, bik, account) and the client
//     profile cross-field rules.
//
// Every violation is reported as an error wrapping [ErrInvalidInput] whose
// text reads "invalid_input: <details>".
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to the named struct fields (Go field names, e.g. "Email").
	Validate(context.Context, any, ...string) error
}
