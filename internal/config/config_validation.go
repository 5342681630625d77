// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/netip"
	"strings"
	"time"
)

// Defaults applied to fields no source has set.
const (
	DefaultHTTPAddress          = "0.0.0.0:8080"
	DefaultTokenIssuer          = "agency-portal"
	DefaultPublicDir            = "public"
	DefaultMaxUploadSize        = 32 << 20
	DefaultRequestTimeout       = 30 * time.Second
	DefaultRateLimit            = 100
	DefaultRateWindow           = time.Minute
	DefaultDaDataURL            = "https://suggestions.dadata.ru/suggestions/api/4_1/rs"
	DefaultAdapterTimeout       = 5 * time.Second
	DefaultSMTPPort             = 587
	DefaultLimiterSweepInterval = time.Minute

	// DevSessionSignKey is used outside production when no key is configured.
	// It is public and must never sign production sessions.
	DevSessionSignKey = "dev-only-insecure-session-key"
)

// applyDefaults fills zero-valued fields with their defaults and normalizes
// list values.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = DefaultRateLimit
	}
	if cfg.Server.RateWindow == 0 {
		cfg.Server.RateWindow = DefaultRateWindow
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.SessionSignKey == "" && !cfg.App.IsProduction() {
		cfg.App.SessionSignKey = DevSessionSignKey
	}
	emails := make([]string, 0, len(cfg.App.AdminEmails))
	for _, email := range cfg.App.AdminEmails {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			emails = append(emails, email)
		}
	}
	cfg.App.AdminEmails = emails

	if cfg.Storage.Files.PublicDir == "" {
		cfg.Storage.Files.PublicDir = DefaultPublicDir
	}
	if cfg.Storage.Files.MaxUploadSize == 0 {
		cfg.Storage.Files.MaxUploadSize = DefaultMaxUploadSize
	}

	if cfg.Adapter.DaDataURL == "" {
		cfg.Adapter.DaDataURL = DefaultDaDataURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}

	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = DefaultSMTPPort
	}

	if cfg.Workers.LimiterSweepInterval == 0 {
		cfg.Workers.LimiterSweepInterval = DefaultLimiterSweepInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.IsProduction() &&
		(cfg.App.SessionSignKey == "" || cfg.App.SessionSignKey == DevSessionSignKey) {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateWindow < 0 {
		return ErrInvalidServerConfigs
	}
	for _, proxy := range cfg.Server.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("%w: trusted proxy %q", ErrInvalidServerConfigs, proxy)
		}
	}

	if cfg.Storage.Files.MaxUploadSize < 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// UsesDevSessionKey reports whether sessions are signed with the public
// development key.
func (cfg *StructuredConfig) UsesDevSessionKey() bool {
	return cfg.App.SessionSignKey == DevSessionSignKey
}

func validProxy(entry string) bool {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return true
	}
	if _, err := netip.ParsePrefix(entry); err == nil {
		return true
	}
	_, err := netip.ParseAddr(entry)
	return err == nil
}
