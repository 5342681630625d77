package http

import (
	"net/http"
)

// withRealIP replaces RemoteAddr with the forwarded client address, but only
// for requests arriving from a trusted proxy. Everyone else is keyed on the
// TCP peer, whatever headers they send.
func (h *Handler) withRealIP(next http.Handler) http.Handler {
	proxies := h.settings.TrustedProxies
	if proxies.Len() == 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := proxies.ForwardedFor(r); ip != "" {
			r.RemoteAddr = ip
		}
		next.ServeHTTP(w, r)
	})
}
