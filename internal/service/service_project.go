package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/validators"
	"github.com/MKhiriev/agency-portal/models"
)

type projectService struct {
	gate              Gate
	projectRepository store.ProjectRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewProjectService(gate Gate, repository store.ProjectRepository, validator validators.Validator, log *logger.Logger) ProjectService {
	return &projectService{
		gate:              gate,
		projectRepository: repository,
		validator:         validator,
		logger:            log,
	}
}

// Mine lists the caller's own projects, also for admins.
func (s *projectService) Mine(ctx context.Context) ([]models.Project, error) {
	session, err := s.gate.Caller(ctx)
	if err != nil {
		return nil, err
	}
	return s.projectRepository.List(ctx, models.ProjectFilter{OwnerID: &session.UserID})
}

func (s *projectService) Get(ctx context.Context, id int64) (models.Project, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return models.Project{}, err
	}

	project, err := s.projectRepository.Get(ctx, models.ProjectFilter{ID: &id, OwnerID: scope.OwnerFilter()})
	if err != nil {
		return models.Project{}, storeError(err, ErrProjectNotFound)
	}
	return project, nil
}

// ListAll lists projects of every user, or of userID when set. Admin only.
func (s *projectService) ListAll(ctx context.Context, userID *int64) ([]models.Project, error) {
	if _, err := s.gate.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.projectRepository.List(ctx, models.ProjectFilter{OwnerID: userID})
}

// Create stores a project owned by the caller. Admins may create projects
// on behalf of another user through input.UserID.
func (s *projectService) Create(ctx context.Context, input models.ProjectInput) (models.Project, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return models.Project{}, err
	}

	ownerID := scope.UserID
	if input.UserID != nil {
		if !scope.IsAdmin && *input.UserID != scope.UserID {
			return models.Project{}, ErrForbidden
		}
		ownerID = *input.UserID
	}

	trimPtr(input.Name)
	if err = requireString(input.Name, "name"); err != nil {
		return models.Project{}, err
	}
	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		UserID:   ownerID,
		Name:     *input.Name,
		Deadline: input.Deadline,
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}

	created, err := s.projectRepository.Create(ctx, project)
	if err != nil {
		if errors.Is(err, store.ErrReferenceNotFound) {
			return models.Project{}, ErrUserNotFound
		}
		return models.Project{}, storeError(err, ErrProjectNotFound)
	}
	return created, nil
}

// Update applies the non-nil fields of input. Only admins may reassign the
// owner.
func (s *projectService) Update(ctx context.Context, id int64, input models.ProjectInput) (models.Project, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return models.Project{}, err
	}
	if input.UserID != nil && !scope.IsAdmin {
		return models.Project{}, ErrForbidden
	}

	if input == (models.ProjectInput{}) {
		return models.Project{}, validators.ErrNoFieldsToUpdate
	}
	trimPtr(input.Name)
	if input.Name != nil {
		if err = requireString(input.Name, "name"); err != nil {
			return models.Project{}, err
		}
	}
	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Project{}, err
	}

	updated, err := s.projectRepository.Update(ctx, models.ProjectFilter{ID: &id, OwnerID: scope.OwnerFilter()}, input)
	if err != nil {
		if errors.Is(err, store.ErrReferenceNotFound) {
			return models.Project{}, ErrUserNotFound
		}
		return models.Project{}, storeError(err, ErrProjectNotFound)
	}
	return updated, nil
}

// Delete removes a project with everything attached to it. Admin only.
func (s *projectService) Delete(ctx context.Context, id int64) error {
	admin, err := s.gate.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	if err = s.projectRepository.Delete(ctx, id); err != nil {
		return storeError(err, ErrProjectNotFound)
	}

	logger.FromContext(ctx).Info().Int64("admin_id", admin.ID).Int64("project_id", id).Msg("project deleted")
	return nil
}
