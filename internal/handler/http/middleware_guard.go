package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/utils"
)

const loginPath = "/login"

// protectedPrefixes are front-end pages that need a session.
var protectedPrefixes = []string{"/dashboard", "/profile", "/admin"}

func isProtectedPage(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// guardPages redirects anonymous navigations to protected pages to the login
// page, keeping the requested path in "next".
func (h *Handler) guardPages(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.SessionFromContext(r.Context()); ok || !isProtectedPage(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		target := loginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
		http.Redirect(w, r, target, http.StatusSeeOther)
	})
}
