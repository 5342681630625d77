package handler

import (
	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/graph"
	"github.com/MKhiriev/agency-portal/internal/handler/http"
	"github.com/MKhiriev/agency-portal/internal/limiter"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transports enabled in cfg. The GraphQL schema is
// parsed here so that a broken schema fails the start-up.
func NewHandlers(services *service.Services, lim limiter.Limiter, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	schemas, err := graph.NewSchemas(services, logger)
	if err != nil {
		return nil, err
	}

	settings, err := http.SettingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &Handlers{
		HTTP: http.NewHandler(services, schemas, lim, settings, logger),
	}, nil
}
