// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/metrics"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/internal/validators"
	"github.com/MKhiriev/agency-portal/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the session token
// lifecycle. Passwords are stored as bcrypt hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// adminEmails are lowercased emails that become admins at registration.
	adminEmails []string

	// hashCost is the bcrypt work factor.
	hashCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// A warning is logged when sessions are signed with the development key.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, log *logger.Logger) AuthService {
	if cfg.SessionSignKey == config.DevSessionSignKey {
		log.Warn().Msg("session tokens are signed with the development key, set APP_SESSION_SIGN_KEY")
	}

	adminEmails := make([]string, 0, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		if email = normalizeEmail(email); email != "" {
			adminEmails = append(adminEmails, email)
		}
	}

	return &authService{
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.SessionSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		adminEmails:    adminEmails,
		hashCost:       bcrypt.DefaultCost,
		logger:         log,
	}
}

// Register creates a new account and opens a session for it.
//
// The email is lowercased before storage; an email already in use (in any
// letter case) yields ErrEmailTaken. Users whose email is on the admin
// allow-list are created as admins. An empty name defaults to the local part
// of the email.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	credentials.Email = normalizeEmail(credentials.Email)
	credentials.Name = strings.TrimSpace(credentials.Name)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	name := credentials.Name
	if name == "" {
		name, _, _ = strings.Cut(credentials.Email, "@")
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         name,
		Email:        credentials.Email,
		PasswordHash: string(hash),
		IsAdmin:      slices.Contains(a.adminEmails, credentials.Email),
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return models.AuthResult{}, ErrEmailTaken
		}
		log.Err(err).Str("email", credentials.Email).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if user.IsAdmin {
		log.Info().Int64("user_id", user.ID).Msg("registered an allow-listed admin")
	}

	token, err := a.CreateSession(ctx, user)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{OK: true, Token: token, User: user}, nil
}

// Login checks the credentials and opens a session.
//
// Unknown emails and wrong passwords are not errors: the result carries
// OK == false and no token.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	credentials.Email = normalizeEmail(credentials.Email)
	if err := a.validator.Validate(ctx, credentials, "Email"); err != nil {
		return models.AuthResult{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("unknown_email").Inc()
			return models.AuthResult{OK: false}, nil
		}
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("wrong_password").Inc()
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.AuthResult{OK: false}, nil
	}

	token, err := a.CreateSession(ctx, user)
	if err != nil {
		return models.AuthResult{}, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return models.AuthResult{OK: true, Token: token, User: user}, nil
}

// CreateSession issues a signed session token for user.
func (a *authService) CreateSession(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, user, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.ID).Msg("session token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseSession verifies a raw session token. Expired and invalid tokens both
// yield ErrUnauthorized.
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	session, err := utils.ParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session rejected")
		return models.Session{}, ErrUnauthorized
	}

	return session, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
