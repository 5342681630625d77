// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/validators"
	"github.com/MKhiriev/agency-portal/models"
)

// taskService manages tasks of the caller's projects.
//
// Admins move tasks freely between the four statuses. Other users may only
// approve a task under review, i.e. move it from REVIEW to DONE; every other
// change of status fails with ErrInvalidStatusTransition.
type taskService struct {
	gate              Gate
	taskRepository    store.TaskRepository
	projectRepository store.ProjectRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewTaskService(gate Gate, tasks store.TaskRepository, projects store.ProjectRepository, validator validators.Validator, log *logger.Logger) TaskService {
	return &taskService{
		gate:              gate,
		taskRepository:    tasks,
		projectRepository: projects,
		validator:         validator,
		logger:            log,
	}
}

// canTransition reports whether a non-admin may move a task from one status
// to another.
func canTransition(from, to models.TaskStatus) bool {
	return from == to || (from == models.TaskReview && to == models.TaskDone)
}

func (s *taskService) List(ctx context.Context, projectID int64, status *models.TaskStatus) ([]models.Task, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return nil, err
	}
	if err = s.validator.Validate(ctx, models.TaskInput{Status: status}, "Status"); err != nil {
		return nil, err
	}
	if err = checkProjectAccess(ctx, s.projectRepository, scope, projectID); err != nil {
		return nil, err
	}

	return s.taskRepository.List(ctx, models.TaskFilter{
		ProjectID: &projectID,
		OwnerID:   scope.OwnerFilter(),
		Status:    status,
	})
}

func (s *taskService) Get(ctx context.Context, id int64) (models.Task, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return models.Task{}, err
	}

	task, err := s.taskRepository.Get(ctx, models.TaskFilter{ID: &id, OwnerID: scope.OwnerFilter()})
	if err != nil {
		return models.Task{}, storeError(err, ErrTaskNotFound)
	}
	return task, nil
}

// Create adds a task to a project of the caller. Non-admins can only create
// tasks in the TODO column.
func (s *taskService) Create(ctx context.Context, input models.TaskInput) (models.Task, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return models.Task{}, err
	}

	if input.ProjectID <= 0 {
		return models.Task{}, fmt.Errorf("%w: projectId is required", validators.ErrInvalidInput)
	}
	trimPtr(input.Title)
	if err = requireString(input.Title, "title"); err != nil {
		return models.Task{}, err
	}
	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Task{}, err
	}
	if !scope.IsAdmin && input.Status != nil && *input.Status != models.TaskTodo {
		return models.Task{}, ErrInvalidStatusTransition
	}
	if err = checkProjectAccess(ctx, s.projectRepository, scope, input.ProjectID); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ProjectID: input.ProjectID,
		Title:     *input.Title,
		DueDate:   input.DueDate,
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	created, err := s.taskRepository.Create(ctx, task)
	if err != nil {
		return models.Task{}, storeError(err, ErrProjectNotFound)
	}
	return created, nil
}

// Update applies the non-nil fields of input. ProjectID is ignored: tasks
// never move between projects.
func (s *taskService) Update(ctx context.Context, id int64, input models.TaskInput) (models.Task, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return models.Task{}, err
	}

	input.ProjectID = 0
	if input == (models.TaskInput{}) {
		return models.Task{}, validators.ErrNoFieldsToUpdate
	}
	trimPtr(input.Title)
	if input.Title != nil {
		if err = requireString(input.Title, "title"); err != nil {
			return models.Task{}, err
		}
	}
	if err = s.validator.Validate(ctx, input); err != nil {
		return models.Task{}, err
	}

	filter := models.TaskFilter{ID: &id, OwnerID: scope.OwnerFilter()}
	if input.Status != nil && !scope.IsAdmin {
		current, err := s.checkTransition(ctx, filter, *input.Status)
		if err != nil {
			return models.Task{}, err
		}
		filter.Status = &current
	}

	updated, err := s.taskRepository.Update(ctx, filter, input)
	if err != nil {
		if filter.Status != nil && errors.Is(err, store.ErrNotFound) {
			return models.Task{}, s.statusChanged(ctx, filter)
		}
		return models.Task{}, storeError(err, ErrTaskNotFound)
	}
	return updated, nil
}

// statusChanged explains a guarded update that matched no row: either the
// task is gone or its status moved after it was checked.
func (s *taskService) statusChanged(ctx context.Context, filter models.TaskFilter) error {
	filter.Status = nil
	if _, err := s.taskRepository.Get(ctx, filter); err != nil {
		return storeError(err, ErrTaskNotFound)
	}
	logger.FromContext(ctx).Info().Int64("task_id", *filter.ID).Msg("task status changed concurrently")
	return ErrInvalidStatusTransition
}

func (s *taskService) UpdateStatus(ctx context.Context, id int64, status models.TaskStatus) (models.Task, error) {
	return s.Update(ctx, id, models.TaskInput{Status: &status})
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return err
	}

	err = s.taskRepository.Delete(ctx, models.TaskFilter{ID: &id, OwnerID: scope.OwnerFilter()})
	return storeError(err, ErrTaskNotFound)
}

// checkTransition returns the status the task has now if the caller may move
// it to the requested one.
func (s *taskService) checkTransition(ctx context.Context, filter models.TaskFilter, to models.TaskStatus) (models.TaskStatus, error) {
	current, err := s.taskRepository.Get(ctx, filter)
	if err != nil {
		return "", storeError(err, ErrTaskNotFound)
	}
	if !canTransition(current.Status, to) {
		logger.FromContext(ctx).Info().
			Int64("task_id", current.ID).
			Str("from", string(current.Status)).
			Str("to", string(to)).
			Msg("status transition refused")
		return "", ErrInvalidStatusTransition
	}
	return current.Status, nil
}

// checkProjectAccess fails with ErrProjectNotFound unless the project exists
// and is visible in scope.
func checkProjectAccess(ctx context.Context, projects store.ProjectRepository, scope Scope, projectID int64) error {
	_, err := projects.Get(ctx, models.ProjectFilter{ID: &projectID, OwnerID: scope.OwnerFilter()})
	return storeError(err, ErrProjectNotFound)
}
