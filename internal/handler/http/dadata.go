package http

import (
	"net/http"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/go-chi/chi/v5"
)

const maxLookupBody = 16 << 10

type lookupRequest struct {
	Query string `json:"query"`
}

// suggest proxies a bank or party lookup to DaData. Upstream failures are
// answered with an empty suggestion list by the service.
func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	var kind models.SuggestionKind
	switch chi.URLParam(r, "kind") {
	case string(models.SuggestBank):
		kind = models.SuggestBank
	case string(models.SuggestParty):
		kind = models.SuggestParty
	default:
		writeError(w, r, errNotFound)
		return
	}

	var req lookupRequest
	if r.Method == http.MethodGet {
		req.Query = r.URL.Query().Get("query")
	} else if err := utils.DecodeJSON(r, &req, maxLookupBody); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("malformed lookup body")
	}

	body := h.services.LookupService.Suggest(r.Context(), kind, req.Query)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing lookup response")
	}
}
