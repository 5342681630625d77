package http

import (
	"net/http"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health reports database connectivity; a failed ping answers 503.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.AppInfoService.Health(r.Context())

	code := http.StatusOK
	if !status.OK {
		code = http.StatusServiceUnavailable
	}
	if _, err := utils.WriteJSON(w, status, code); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing health response")
	}
}
