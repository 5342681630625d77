package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("upstream bad request")
	ErrUnauthorized        = errors.New("upstream unauthorized")
	ErrForbidden           = errors.New("upstream forbidden")
	ErrNotFound            = errors.New("upstream not found")
	ErrTooManyRequests     = errors.New("upstream rate limited")
	ErrBadGateway          = errors.New("upstream bad gateway")
	ErrInternalServerError = errors.New("upstream internal server error")

	ErrUnknownSuggestionKind = errors.New("unknown suggestion kind")
	ErrSuggestionsDisabled   = errors.New("suggestions api key is not configured")
	ErrMailDisabled          = errors.New("mail is not configured")
	ErrNoRecipients          = errors.New("mail has no recipients")
	ErrInvalidObjectKey      = errors.New("invalid object key")
)
