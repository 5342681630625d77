// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProjectStatus is the lifecycle stage of a client project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectOnHold     ProjectStatus = "ON_HOLD"
	ProjectCompleted  ProjectStatus = "COMPLETED"
)

// Project is owned by exactly one user. Tasks, milestones and files are
// scoped to it through ProjectID.
type Project struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"userId"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Deadline    *time.Time    `json:"deadline,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ProjectInput is used for both creation and update. On update nil fields
// are left untouched; on create Name is required.
type ProjectInput struct {
	// UserID assigns the owner. Honored for admins only.
	UserID      *int64         `validate:"omitempty,gt=0"`
	Name        *string        `validate:"omitempty,min=1,max=200"`
	Description *string        `validate:"omitempty,max=5000"`
	Status      *ProjectStatus `validate:"omitempty,oneof=PLANNING IN_PROGRESS ON_HOLD COMPLETED"`
	Deadline    *time.Time
}

// ProjectFilter selects projects. A nil OwnerID means no ownership filter and
// is only ever built for admins.
type ProjectFilter struct {
	ID      *int64
	OwnerID *int64
}
