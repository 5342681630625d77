package service

import (
	"context"

	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/models"
)

type appInfoService struct {
	appVersion string
	siteURL    string

	healthChecker store.HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, healthChecker store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:    cfg.Version,
		siteURL:       cfg.SiteURL,
		healthChecker: healthChecker,
		logger:        logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports whether the database answers a ping. OK mirrors the
// database state.
func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{SiteURL: s.siteURL}

	if err := s.healthChecker.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		return status
	}

	status.OK = true
	status.DB = true
	return status
}
