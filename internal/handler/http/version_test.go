package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	m := newMockServices(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")
	router := newTestHandler(t, m.services, nil, Settings{}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		status     models.HealthStatus
		wantStatus int
	}{
		{name: "db up", status: models.HealthStatus{OK: true, DB: true, SiteURL: "https://agency.example"}, wantStatus: http.StatusOK},
		{name: "db down", status: models.HealthStatus{SiteURL: "https://agency.example"}, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockServices(t)
			m.appInfo.EXPECT().Health(gomock.Any()).Return(tt.status)
			router := newTestHandler(t, m.services, nil, Settings{}).Init()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got models.HealthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.status, got)
		})
	}
}

func TestSuggest(t *testing.T) {
	const upstream = `{"suggestions":[{"value":"Sber"}]}`

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantKind models.SuggestionKind
	}{
		{name: "bank via get", method: http.MethodGet, target: "/api/dadata/bank?query=044525225", wantKind: models.SuggestBank},
		{name: "party via post", method: http.MethodPost, target: "/api/dadata/party", body: `{"query":"7707083893"}`, wantKind: models.SuggestParty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockServices(t)
			m.auth.EXPECT().ParseSession(gomock.Any(), "token").Return(models.Session{UserID: 7}, nil)
			m.lookup.EXPECT().Suggest(gomock.Any(), tt.wantKind, gomock.Any()).Return(json.RawMessage(upstream))
			router := newTestHandler(t, m.services, nil, Settings{}).Init()

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "token"})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, upstream, rec.Body.String())
		})
	}
}

func TestSuggest_UnknownKind(t *testing.T) {
	m := newMockServices(t)
	m.auth.EXPECT().ParseSession(gomock.Any(), "token").Return(models.Session{UserID: 7}, nil)
	router := newTestHandler(t, m.services, nil, Settings{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/dadata/address?query=x", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "token"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatic_GuardedAndServed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>portal</h1>"), 0o644))
	router := newTestHandler(t, newMockServices(t).services, nil, Settings{PublicDir: dir}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portal")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestUploadedFiles_Headers(t *testing.T) {
	dir := t.TempDir()
	uploads := filepath.Join(dir, "uploads")
	require.NoError(t, os.MkdirAll(uploads, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(uploads, "page.html"), []byte("<script>alert(1)</script>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(uploads, "icon.svg"), []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(uploads, "avatar.png"), []byte("\x89PNG\r\n\x1a\n"), 0o644))
	router := newTestHandler(t, newMockServices(t).services, nil, Settings{PublicDir: dir}).Init()

	tests := []struct {
		path            string
		wantDisposition string
	}{
		{path: "/uploads/page.html", wantDisposition: "attachment"},
		{path: "/uploads/icon.svg", wantDisposition: "attachment"},
		{path: "/uploads/avatar.png", wantDisposition: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "sandbox")
			assert.Equal(t, tt.wantDisposition, rec.Header().Get("Content-Disposition"))
		})
	}
}
