package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/validators"
	"github.com/MKhiriev/agency-portal/models"
)

type milestoneService struct {
	gate                Gate
	milestoneRepository store.MilestoneRepository
	projectRepository   store.ProjectRepository
	validator           validators.Validator

	logger *logger.Logger
}

func NewMilestoneService(gate Gate, milestones store.MilestoneRepository, projects store.ProjectRepository, validator validators.Validator, log *logger.Logger) MilestoneService {
	return &milestoneService{
		gate:                gate,
		milestoneRepository: milestones,
		projectRepository:   projects,
		validator:           validator,
		logger:              log,
	}
}

func (s *milestoneService) List(ctx context.Context, projectID int64) ([]models.Milestone, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return nil, err
	}
	if err = checkProjectAccess(ctx, s.projectRepository, scope, projectID); err != nil {
		return nil, err
	}

	return s.milestoneRepository.List(ctx, models.MilestoneFilter{ProjectID: &projectID, OwnerID: scope.OwnerFilter()})
}

func (s *milestoneService) Create(ctx context.Context, input models.MilestoneInput) (models.Milestone, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return models.Milestone{}, err
	}

	if input.ProjectID <= 0 {
		return models.Milestone{}, fmt.Errorf("%w: projectId is required", validators.ErrInvalidInput)
	}
	trimPtr(input.Title)
	if err = requireString(input.Title, "title"); err != nil {
		return models.Milestone{}, err
	}
	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Milestone{}, err
	}
	if err = checkProjectAccess(ctx, s.projectRepository, scope, input.ProjectID); err != nil {
		return models.Milestone{}, err
	}

	milestone := models.Milestone{
		ProjectID: input.ProjectID,
		Title:     *input.Title,
		DueDate:   input.DueDate,
	}
	if input.Description != nil {
		milestone.Description = *input.Description
	}
	if input.Completed != nil {
		milestone.Completed = *input.Completed
	}

	created, err := s.milestoneRepository.Create(ctx, milestone)
	if err != nil {
		return models.Milestone{}, storeError(err, ErrProjectNotFound)
	}
	return created, nil
}

func (s *milestoneService) Update(ctx context.Context, id int64, input models.MilestoneInput) (models.Milestone, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return models.Milestone{}, err
	}

	input.ProjectID = 0
	if input == (models.MilestoneInput{}) {
		return models.Milestone{}, validators.ErrNoFieldsToUpdate
	}
	trimPtr(input.Title)
	if input.Title != nil {
		if err = requireString(input.Title, "title"); err != nil {
			return models.Milestone{}, err
		}
	}
	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Milestone{}, err
	}

	updated, err := s.milestoneRepository.Update(ctx, models.MilestoneFilter{ID: &id, OwnerID: scope.OwnerFilter()}, input)
	if err != nil {
		return models.Milestone{}, storeError(err, ErrMilestoneNotFound)
	}
	return updated, nil
}

func (s *milestoneService) Delete(ctx context.Context, id int64) error {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return err
	}

	err = s.milestoneRepository.Delete(ctx, models.MilestoneFilter{ID: &id, OwnerID: scope.OwnerFilter()})
	return storeError(err, ErrMilestoneNotFound)
}
