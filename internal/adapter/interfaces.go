// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the portal: the
// DaData suggestions API, object storage for uploads and the SMTP mailer.
//
// Each integration is hidden behind a small interface so services can be
// tested with gomock doubles. Upstream HTTP failures are mapped to the
// sentinel values in errors.go by mapHTTPError so callers can use
// [errors.Is].
package adapter

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MKhiriev/agency-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SuggestionsClient queries the DaData suggestions API with the server-held
// key.
type SuggestionsClient interface {
	// Suggest forwards query to the endpoint selected by kind and returns
	// the upstream JSON verbatim.
	Suggest(ctx context.Context, kind models.SuggestionKind, query string) (json.RawMessage, error)
}

// ObjectStore persists uploaded files.
type ObjectStore interface {
	// Put stores content under key and describes where it can be fetched.
	Put(ctx context.Context, key string, content io.Reader, size int64, mimeType string) (models.StoredObject, error)

	// Delete removes the object stored under key. A missing object is not
	// an error.
	Delete(ctx context.Context, key string) error
}

// Mailer sends notification emails.
type Mailer interface {
	Send(ctx context.Context, msg models.MailMessage) error
}
