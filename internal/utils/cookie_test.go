// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieJar_Empty(t *testing.T) {
	jar := NewCookieJar()
	assert.Nil(t, jar.SessionCookie(false))
}

func TestCookieJar_SetSession(t *testing.T) {
	jar := NewCookieJar()
	jar.SetSession("signed-token")

	cookie := jar.SessionCookie(false)
	require.NotNil(t, cookie)

	w := httptest.NewRecorder()
	http.SetCookie(w, cookie)
	header := w.Header().Get("Set-Cookie")

	assert.True(t, strings.HasPrefix(header, "session=signed-token"))
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "Max-Age=604800")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Lax")
	assert.NotContains(t, header, "Secure")
}

func TestCookieJar_ClearSession(t *testing.T) {
	jar := NewCookieJar()
	jar.SetSession("signed-token")
	jar.ClearSession()

	w := httptest.NewRecorder()
	http.SetCookie(w, jar.SessionCookie(true))
	header := w.Header().Get("Set-Cookie")

	assert.True(t, strings.HasPrefix(header, "session=;"))
	assert.Contains(t, header, "Max-Age=0")
	assert.Contains(t, header, "Secure")
}

func TestCookieJar_LastCallWins(t *testing.T) {
	jar := NewCookieJar()
	jar.ClearSession()
	jar.SetSession("second")

	cookie := jar.SessionCookie(false)
	require.NotNil(t, cookie)
	assert.Equal(t, "second", cookie.Value)
}

func TestCookieJarFromContext(t *testing.T) {
	_, ok := CookieJarFromContext(context.Background())
	assert.False(t, ok)

	jar := NewCookieJar()
	got, ok := CookieJarFromContext(WithCookieJar(context.Background(), jar))
	assert.True(t, ok)
	assert.Same(t, jar, got)
}
