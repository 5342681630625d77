package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/models"
)

var suggestionPaths = map[models.SuggestionKind]string{
	models.SuggestBank:  "/suggest/bank",
	models.SuggestParty: "/suggest/party",
}

type dadataClient struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewDaDataClient constructs a [SuggestionsClient] for the DaData
// suggestions API. It normalises and validates cfg.DaDataURL.
//
// Returns an error if the URL is empty or cannot be parsed.
func NewDaDataClient(cfg config.Adapter, logger *logger.Logger) (SuggestionsClient, error) {
	baseURL, err := normalizeBaseURL(cfg.DaDataURL)
	if err != nil {
		return nil, fmt.Errorf("invalid dadata url: %w", err)
	}

	return &dadataClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: strings.TrimSpace(cfg.DaDataAPIKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Suggest implements [SuggestionsClient]. It POSTs {"query": query} to the
// endpoint of kind with the "Token <key>" authorization header.
func (d *dadataClient) Suggest(ctx context.Context, kind models.SuggestionKind, query string) (json.RawMessage, error) {
	path, ok := suggestionPaths[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuggestionKind, kind)
	}
	if d.apiKey == "" {
		return nil, ErrSuggestionsDisabled
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Token "+d.apiKey).
		SetBody(map[string]string{"query": query}).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("dadata %s request: %w", kind, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: dadata returned malformed json", ErrBadGateway)
	}

	return json.RawMessage(body), nil
}
