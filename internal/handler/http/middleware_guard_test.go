package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/stretchr/testify/assert"
)

func TestGuardPages(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		withSession  bool
		wantStatus   int
		wantLocation string
	}{
		{name: "dashboard anonymous", path: "/dashboard", wantStatus: http.StatusSeeOther, wantLocation: "/login?next=%2Fdashboard"},
		{name: "admin subpage anonymous", path: "/admin/users?page=2", wantStatus: http.StatusSeeOther, wantLocation: "/login?next=%2Fadmin%2Fusers%3Fpage%3D2"},
		{name: "profile with session", path: "/profile", withSession: true, wantStatus: http.StatusOK},
		{name: "public page", path: "/cases/shop", wantStatus: http.StatusOK},
		{name: "prefix lookalike is public", path: "/administration", wantStatus: http.StatusOK},
	}

	h := &Handler{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.withSession {
				req = req.WithContext(utils.WithSession(req.Context(), models.Session{UserID: 7}))
			}
			rec := httptest.NewRecorder()

			h.guardPages(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
		})
	}
}
