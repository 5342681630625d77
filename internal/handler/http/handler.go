package http

import (
	"time"

	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/graph"
	"github.com/MKhiriev/agency-portal/internal/limiter"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/utils"
)

// Settings are the transport options taken from the configuration.
type Settings struct {
	// SecureCookies adds the Secure attribute to the session cookie.
	SecureCookies bool

	// PublicDir is the static front-end root. Empty disables static files.
	PublicDir string

	// MaxUploadSize caps the multipart body of /api/upload.
	MaxUploadSize int64

	// RequestTimeout cancels slow requests. Zero disables it.
	RequestTimeout time.Duration

	// TrustedProxies may announce the client address in forwarding
	// headers. Nil trusts nobody.
	TrustedProxies *utils.ProxyList
}

// SettingsFromConfig extracts the transport options.
func SettingsFromConfig(cfg config.StructuredConfig) (Settings, error) {
	proxies, err := utils.ParseProxyList(cfg.Server.TrustedProxies)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		SecureCookies:  cfg.App.IsProduction(),
		PublicDir:      cfg.Storage.Files.PublicDir,
		MaxUploadSize:  cfg.Storage.Files.MaxUploadSize,
		RequestTimeout: cfg.Server.RequestTimeout,
		TrustedProxies: proxies,
	}, nil
}

type Handler struct {
	services *service.Services
	schemas  graph.Schemas
	limiter  limiter.Limiter
	settings Settings
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the transport. A nil limiter disables rate limiting.
func NewHandler(services *service.Services, schemas graph.Schemas, limiter limiter.Limiter, settings Settings, logger *logger.Logger) *Handler {
	if settings.MaxUploadSize <= 0 {
		settings.MaxUploadSize = service.DefaultMaxUploadSize
	}
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		schemas:  schemas,
		limiter:  limiter,
		settings: settings,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
