package adapter

import (
	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/logger"
)

// Adapters groups every outbound integration used by the services.
type Adapters struct {
	Suggestions SuggestionsClient
	Objects     ObjectStore
	Mailer      Mailer
}

// NewAdapters builds the integrations described by cfg. Uploads go to the S3
// bucket when one is configured and to the public dir otherwise.
func NewAdapters(cfg config.StructuredConfig, log *logger.Logger) (*Adapters, error) {
	suggestions, err := NewDaDataClient(cfg.Adapter, log)
	if err != nil {
		return nil, err
	}

	var objects ObjectStore
	if cfg.Storage.S3.Enabled() {
		objects, err = NewS3ObjectStore(cfg.Storage.S3, log)
		log.Info().Str("bucket", cfg.Storage.S3.Bucket).Msg("uploads are stored in s3")
	} else {
		objects, err = NewLocalObjectStore(cfg.Storage.Files.PublicDir, log)
		log.Info().Str("dir", cfg.Storage.Files.PublicDir).Msg("uploads are stored on local disk")
	}
	if err != nil {
		return nil, err
	}

	if cfg.Mail.Host == "" {
		log.Warn().Msg("mail host is not configured, contact notifications are disabled")
	}

	return &Adapters{
		Suggestions: suggestions,
		Objects:     objects,
		Mailer:      NewSMTPMailer(cfg.Mail, log),
	}, nil
}
