// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Milestone marks a dated checkpoint of a project.
type Milestone struct {
	ID          int64      `json:"id"`
	ProjectID   int64      `json:"projectId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// MilestoneInput mirrors TaskInput: ProjectID and Title required on create,
// nil fields untouched on update.
type MilestoneInput struct {
	ProjectID   int64   `validate:"omitempty,gt=0"`
	Title       *string `validate:"omitempty,min=1,max=200"`
	Description *string `validate:"omitempty,max=5000"`
	DueDate     *time.Time
	Completed   *bool
}

// MilestoneFilter selects milestones; see TaskFilter.
type MilestoneFilter struct {
	ID        *int64
	ProjectID *int64
	OwnerID   *int64
}
