package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/metrics"
	"github.com/MKhiriev/agency-portal/internal/utils"
	graphql "github.com/graph-gophers/graphql-go"
)

const maxGraphQLBody = 1 << 20

type graphqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// graphql executes one operation. GET requests run against the read-only
// schema. The session cookie requested by resolvers through the cookie jar
// is written before the body.
func (h *Handler) graphql(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := decodeGraphQLRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	schema := h.schemas.Full
	if r.Method == http.MethodGet {
		schema = h.schemas.ReadOnly
	}

	jar := utils.NewCookieJar()
	ctx := utils.WithCookieJar(r.Context(), jar)
	resp := schema.Exec(ctx, req.Query, req.OperationName, req.Variables)

	countOperation(req.OperationName, resp)

	if cookie := jar.SessionCookie(h.settings.SecureCookies); cookie != nil {
		http.SetCookie(w, cookie)
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("writing graphql response")
	}
}

func decodeGraphQLRequest(r *http.Request) (graphqlRequest, error) {
	var req graphqlRequest

	if r.Method == http.MethodGet {
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if vars := q.Get("variables"); vars != "" {
			if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
				return req, fmt.Errorf("%w: variables: %w", ErrMalformedRequest, err)
			}
		}
	} else if err := utils.DecodeJSON(r, &req, maxGraphQLBody); err != nil {
		return req, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}

	if req.Query == "" {
		return req, ErrMissingQuery
	}
	return req, nil
}

func countOperation(name string, resp *graphql.Response) {
	switch {
	case name == "":
		name = "anonymous"
	case len(name) > 64:
		name = "other"
	}
	result := "ok"
	if len(resp.Errors) > 0 {
		result = "error"
	}
	metrics.GraphQLOperationsTotal.WithLabelValues(name, result).Inc()
}
