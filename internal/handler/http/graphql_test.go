package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGraphQL_LoginSetsCookie(t *testing.T) {
	m := newMockServices(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResult{OK: true, Token: models.Token{SignedString: "signed"}, User: models.User{ID: 7}}, nil)
	router := newTestHandler(t, m.services, nil, Settings{SecureCookies: true}).Init()

	body := `{"query":"mutation { login(email: \"a@b.com\", password: \"secret1\") { ok } }"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"login":{"ok":true}}}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, utils.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, utils.SessionCookieMaxAge, cookies[0].MaxAge)
}

func TestGraphQL_LogoutClearsCookie(t *testing.T) {
	router := newTestHandler(t, newMockServices(t).services, nil, Settings{}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader(`{"query":"mutation { logout }"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestGraphQL_GetRunsQueries(t *testing.T) {
	m := newMockServices(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")
	router := newTestHandler(t, m.services, nil, Settings{}).Init()

	target := "/api/graphql?" + url.Values{"query": {"query V { version }"}, "operationName": {"V"}}.Encode()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"version":"1.4.0"}}`, rec.Body.String())
}

func TestGraphQL_GetRejectsMutations(t *testing.T) {
	router := newTestHandler(t, newMockServices(t).services, nil, Settings{}).Init()

	target := "/api/graphql?" + url.Values{"query": {"mutation { logout }"}}.Encode()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Contains(t, rec.Body.String(), `"errors"`)
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestGraphQL_BadRequests(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		wantError string
	}{
		{name: "missing query", method: http.MethodPost, target: "/api/graphql", body: `{}`, wantError: "query is required"},
		{name: "malformed json", method: http.MethodPost, target: "/api/graphql", body: `{"query":`, wantError: "malformed request"},
		{name: "malformed variables", method: http.MethodGet, target: "/api/graphql?query=%7Bversion%7D&variables=%5B", wantError: "malformed request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(t, newMockServices(t).services, nil, Settings{}).Init()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"ok":false,"error":"`+tt.wantError+`"}`, rec.Body.String())
		})
	}
}

func TestUnknownMethodIsNotFound(t *testing.T) {
	router := newTestHandler(t, newMockServices(t).services, nil, Settings{}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/graphql", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
