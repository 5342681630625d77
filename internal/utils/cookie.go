// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const (
	// SessionCookieName is the name of the HttpOnly cookie holding the
	// session token.
	SessionCookieName = "session"

	// SessionCookieMaxAge matches the session token lifetime, in seconds.
	SessionCookieMaxAge = int(SessionDuration / time.Second)
)

var cookieJarCtxKey = contextKey("cookieJar")

type jarAction int

const (
	jarNone jarAction = iota
	jarSet
	jarClear
)

// CookieJar collects the session cookie change requested while a request is
// being executed. The transport writes it to the response afterwards, so
// resolvers never touch the http.ResponseWriter.
//
// The last call wins.
type CookieJar struct {
	mu     sync.Mutex
	action jarAction
	token  string
}

// NewCookieJar returns an empty jar.
func NewCookieJar() *CookieJar {
	return &CookieJar{}
}

// SetSession requests the session cookie to be set to token.
func (j *CookieJar) SetSession(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.action = jarSet
	j.token = token
}

// ClearSession requests the session cookie to be removed.
func (j *CookieJar) ClearSession() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.action = jarClear
	j.token = ""
}

// SessionCookie returns the cookie to write, or nil when nothing was requested.
// secure adds the Secure attribute (production).
func (j *CookieJar) SessionCookie(secure bool) *http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()

	switch j.action {
	case jarSet:
		return &http.Cookie{
			Name:     SessionCookieName,
			Value:    j.token,
			Path:     "/",
			MaxAge:   SessionCookieMaxAge,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		}
	case jarClear:
		return &http.Cookie{
			Name:     SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1, // serialized as Max-Age=0
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		}
	default:
		return nil
	}
}

// WithCookieJar attaches jar to ctx.
func WithCookieJar(ctx context.Context, jar *CookieJar) context.Context {
	return context.WithValue(ctx, cookieJarCtxKey, jar)
}

// CookieJarFromContext returns the jar attached to ctx, if any.
func CookieJarFromContext(ctx context.Context) (*CookieJar, bool) {
	jar, ok := ctx.Value(cookieJarCtxKey).(*CookieJar)
	return jar, ok && jar != nil
}
