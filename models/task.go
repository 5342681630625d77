// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TaskStatus is the board column of a task.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskDone       TaskStatus = "DONE"
)

// TaskPriority orders tasks inside a column.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

// Task belongs to a project and inherits its ownership.
type Task struct {
	ID          int64        `json:"id"`
	ProjectID   int64        `json:"projectId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// TaskInput is used for creation (ProjectID and Title required) and for
// partial updates (nil fields untouched, ProjectID ignored).
type TaskInput struct {
	ProjectID   int64         `validate:"omitempty,gt=0"`
	Title       *string       `validate:"omitempty,min=1,max=200"`
	Description *string       `validate:"omitempty,max=5000"`
	Status      *TaskStatus   `validate:"omitempty,oneof=TODO IN_PROGRESS REVIEW DONE"`
	Priority    *TaskPriority `validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	DueDate     *time.Time
}

// TaskFilter selects tasks. OwnerID, when set, restricts results to tasks of
// projects owned by that user.
type TaskFilter struct {
	ID        *int64
	ProjectID *int64
	OwnerID   *int64
	Status    *TaskStatus
}
