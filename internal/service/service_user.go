package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/validators"
	"github.com/MKhiriev/agency-portal/models"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	gate           Gate
	userRepository store.UserRepository
	validator      validators.Validator
	hashCost       int

	logger *logger.Logger
}

func NewUserService(gate Gate, userRepository store.UserRepository, validator validators.Validator, log *logger.Logger) UserService {
	return &userService{
		gate:           gate,
		userRepository: userRepository,
		validator:      validator,
		hashCost:       bcrypt.DefaultCost,
		logger:         log,
	}
}

func (s *userService) Me(ctx context.Context) (models.User, error) {
	return s.gate.CurrentUser(ctx)
}

func (s *userService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	user, err := s.gate.CurrentUser(ctx)
	if err != nil {
		return models.User{}, err
	}

	if update.Name == nil && update.AvatarURL == nil {
		return models.User{}, validators.ErrNoFieldsToUpdate
	}
	trimPtr(update.Name)
	if err = s.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	updated, err := s.userRepository.UpdateProfile(ctx, user.ID, update)
	if err != nil {
		return models.User{}, storeError(err, ErrUserNotFound)
	}
	return updated, nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (s *userService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	user, err := s.gate.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err = s.validator.Validate(ctx, change); err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(change.CurrentPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(change.NewPassword), s.hashCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = s.userRepository.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return storeError(err, ErrUserNotFound)
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.ID).Msg("password changed")
	return nil
}

func (s *userService) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if _, err := s.gate.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(ctx, filter); err != nil {
		return nil, err
	}

	return s.userRepository.ListUsers(ctx, filter)
}

func (s *userService) Get(ctx context.Context, id int64) (models.User, error) {
	if _, err := s.gate.RequireAdmin(ctx); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, storeError(err, ErrUserNotFound)
	}
	return user, nil
}

// SetAdmin grants or revokes the admin flag. An admin cannot revoke their own
// flag, which would leave the caller locked out of the back-office.
func (s *userService) SetAdmin(ctx context.Context, id int64, isAdmin bool) (models.User, error) {
	admin, err := s.gate.RequireAdmin(ctx)
	if err != nil {
		return models.User{}, err
	}
	if id == admin.ID && !isAdmin {
		return models.User{}, ErrForbidden
	}

	user, err := s.userRepository.SetAdmin(ctx, id, isAdmin)
	if err != nil {
		return models.User{}, storeError(err, ErrUserNotFound)
	}

	logger.FromContext(ctx).Info().
		Int64("admin_id", admin.ID).
		Int64("user_id", id).
		Bool("is_admin", isAdmin).
		Msg("admin flag changed")
	return user, nil
}

// Delete removes a user. Admins can never delete themselves.
func (s *userService) Delete(ctx context.Context, id int64) error {
	admin, err := s.gate.RequireAdmin(ctx)
	if err != nil {
		return err
	}
	if id == admin.ID {
		return ErrForbiddenSelfDelete
	}

	if err = s.userRepository.DeleteUser(ctx, id); err != nil {
		return storeError(err, ErrUserNotFound)
	}

	logger.FromContext(ctx).Info().Int64("admin_id", admin.ID).Int64("user_id", id).Msg("user deleted")
	return nil
}
