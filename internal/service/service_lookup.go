package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/adapter"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/metrics"
	"github.com/MKhiriev/agency-portal/models"
)

const maxSuggestQueryLength = 300

type lookupService struct {
	suggestions adapter.SuggestionsClient

	logger *logger.Logger
}

func NewLookupService(suggestions adapter.SuggestionsClient, log *logger.Logger) LookupService {
	return &lookupService{
		suggestions: suggestions,
		logger:      log,
	}
}

func (s *lookupService) Suggest(ctx context.Context, kind models.SuggestionKind, query string) json.RawMessage {
	query = strings.TrimSpace(query)
	if query == "" || len(query) > maxSuggestQueryLength {
		return json.RawMessage(models.EmptySuggestions)
	}

	result, err := s.suggestions.Suggest(ctx, kind, query)
	if err != nil {
		if !errors.Is(err, adapter.ErrSuggestionsDisabled) {
			metrics.UpstreamFailuresTotal.WithLabelValues("dadata").Inc()
			logger.FromContext(ctx).Err(err).Str("kind", string(kind)).Msg("suggestions lookup failed")
		}
		return json.RawMessage(models.EmptySuggestions)
	}
	return result
}
