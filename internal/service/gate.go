package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/utils"
	"github.com/MKhiriev/agency-portal/models"
)

// Scope is the ownership scope of a caller.
type Scope struct {
	UserID  int64
	IsAdmin bool
}

// OwnerFilter returns the owner id repositories must filter by, or nil for
// admins who see every row.
func (s Scope) OwnerFilter() *int64 {
	if s.IsAdmin {
		return nil
	}
	id := s.UserID
	return &id
}

type gate struct {
	users store.UserRepository
}

// NewGate returns a Gate backed by the user repository. The admin flag is
// read from storage on every call and never cached.
func NewGate(users store.UserRepository) Gate {
	return &gate{users: users}
}

func (g *gate) Caller(ctx context.Context) (models.Session, error) {
	session, ok := utils.SessionFromContext(ctx)
	if !ok {
		return models.Session{}, ErrUnauthorized
	}
	return session, nil
}

func (g *gate) CurrentUser(ctx context.Context) (models.User, error) {
	session, err := g.Caller(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := g.users.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logger.FromContext(ctx).Warn().Int64("user_id", session.UserID).Msg("session refers to a deleted user")
			return models.User{}, ErrUnauthorized
		}
		return models.User{}, err
	}
	return user, nil
}

func (g *gate) RequireAdmin(ctx context.Context) (models.User, error) {
	session, err := g.Caller(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := g.users.FindUserByID(ctx, session.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", session.UserID).Msg("admin check failed, denying")
		return models.User{}, ErrForbidden
	}
	if !user.IsAdmin {
		return models.User{}, ErrForbidden
	}
	return user, nil
}

func (g *gate) Scope(ctx context.Context) (Scope, error) {
	user, err := g.CurrentUser(ctx)
	if err != nil {
		return Scope{}, err
	}
	return Scope{UserID: user.ID, IsAdmin: user.IsAdmin}, nil
}

func (g *gate) IsAdmin(ctx context.Context) bool {
	if _, ok := utils.SessionFromContext(ctx); !ok {
		return false
	}
	_, err := g.RequireAdmin(ctx)
	return err == nil
}
