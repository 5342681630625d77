// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/metrics"
	"github.com/MKhiriev/agency-portal/internal/utils"
)

// withRateLimit answers 429 once a client address exhausts its window.
// Limiter failures let the request through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, err := h.limiter.Allow(r.Context(), utils.ClientAddress(r))
		if err != nil {
			metrics.RateLimiterErrorsTotal.Inc()
			logger.FromRequest(r).Warn().Err(err).Msg("rate limiter failed, request let through")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			metrics.RateLimitedTotal.Inc()
			writeError(w, r, ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
