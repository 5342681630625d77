package http

import (
	"net/http"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/utils"
)

// withSession decodes the session cookie. An invalid or expired cookie makes
// the request anonymous; it is never an error at this point.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(utils.SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ParseSession(ctx, cookie.Value)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("ignoring session cookie")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}

// requireSession rejects anonymous requests with 401.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.SessionFromContext(r.Context()); !ok {
			writeError(w, r, service.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
