// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, the session
// cookie side channel, HTTP response writing, HTTP client initialization,
// session token generation and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/agency-portal/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the decoded session in the context.
// The session middleware writes it; the authorization gate reads it.
var SessionCtxKey = contextKey("session")

// TraceIDCtxKey is the key under which the request trace id is stored.
var TraceIDCtxKey = contextKey("traceID")

// WithSession returns a copy of ctx carrying the verified session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// SessionFromContext retrieves the verified session from the context.
//
// Returns the session and an ok flag:
//   - ok == true  — a session is present and identifies a user
//   - ok == false — the request is anonymous
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	if !ok || session.UserID <= 0 {
		return models.Session{}, false
	}
	return session, true
}

// WithTraceID returns a copy of ctx carrying the request trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// TraceIDFromContext returns the request trace id or an empty string.
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
