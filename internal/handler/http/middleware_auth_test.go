package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func sessionProbe(got *models.Session, ok *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got, *ok = utils.SessionFromContext(r.Context())
	})
}

func TestWithSession(t *testing.T) {
	session := models.Session{UserID: 7, Email: "client@example.com"}

	tests := []struct {
		name    string
		cookie  string
		setup   func(m *mockServices)
		wantOK  bool
		wantUID int64
	}{
		{name: "no cookie is anonymous"},
		{
			name:   "valid cookie attaches the session",
			cookie: "good",
			setup: func(m *mockServices) {
				m.auth.EXPECT().ParseSession(gomock.Any(), "good").Return(session, nil)
			},
			wantOK:  true,
			wantUID: 7,
		},
		{
			name:   "invalid cookie is anonymous",
			cookie: "forged",
			setup: func(m *mockServices) {
				m.auth.EXPECT().ParseSession(gomock.Any(), "forged").Return(models.Session{}, service.ErrUnauthorized)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockServices(t)
			if tt.setup != nil {
				tt.setup(m)
			}
			h := newTestHandler(t, m.services, nil, Settings{})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: tt.cookie})
			}

			var (
				got models.Session
				ok  bool
			)
			h.withSession(sessionProbe(&got, &ok)).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantUID, got.UserID)
		})
	}
}

func TestRequireSession(t *testing.T) {
	h := newTestHandler(t, newMockServices(t).services, nil, Settings{})
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h.requireSession(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/upload", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"unauthorized"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	req = req.WithContext(utils.WithSession(req.Context(), models.Session{UserID: 7}))
	h.requireSession(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, called)
}
