// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business operations of the portal.
//
// Every operation derives the caller from the session stored in the request
// context and authorises through [Gate]:
//   - self-scoped operations filter storage queries by the caller's id, so
//     rows of other users behave exactly like missing rows;
//   - admin-scoped operations reload the caller's admin flag from storage
//     on every call and fail closed.
//
// Errors returned to API clients are the sentinels in errors.go and
// validation errors wrapping validators.ErrInvalidInput.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/agency-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Gate resolves and authorises the caller of an operation.
type Gate interface {
	// Caller returns the verified session or ErrUnauthorized.
	Caller(ctx context.Context) (models.Session, error)

	// CurrentUser reloads the caller's user row. A user deleted after the
	// session was issued yields ErrUnauthorized.
	CurrentUser(ctx context.Context) (models.User, error)

	// RequireAdmin reloads the caller and fails with ErrForbidden unless the
	// stored admin flag is set or when the lookup itself fails.
	RequireAdmin(ctx context.Context) (models.User, error)

	// Scope returns the caller's ownership scope.
	Scope(ctx context.Context) (Scope, error)

	// IsAdmin reports whether the request comes from an admin. Anonymous
	// callers and lookup failures report false.
	IsAdmin(ctx context.Context) bool
}

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	CreateSession(ctx context.Context, user models.User) (models.Token, error)
	ParseSession(ctx context.Context, tokenString string) (models.Session, error)
}

type UserService interface {
	Me(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
	ChangePassword(ctx context.Context, change models.PasswordChange) error

	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	SetAdmin(ctx context.Context, id int64, isAdmin bool) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

type ClientProfileService interface {
	// Mine returns the caller's profile or nil when none was saved yet.
	Mine(ctx context.Context) (*models.ClientProfile, error)
	Save(ctx context.Context, profile models.ClientProfile) (models.ClientProfile, error)
}

type ProjectService interface {
	Mine(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id int64) (models.Project, error)
	ListAll(ctx context.Context, userID *int64) ([]models.Project, error)
	Create(ctx context.Context, input models.ProjectInput) (models.Project, error)
	Update(ctx context.Context, id int64, input models.ProjectInput) (models.Project, error)
	Delete(ctx context.Context, id int64) error
}

type TaskService interface {
	List(ctx context.Context, projectID int64, status *models.TaskStatus) ([]models.Task, error)
	Get(ctx context.Context, id int64) (models.Task, error)
	Create(ctx context.Context, input models.TaskInput) (models.Task, error)
	Update(ctx context.Context, id int64, input models.TaskInput) (models.Task, error)
	UpdateStatus(ctx context.Context, id int64, status models.TaskStatus) (models.Task, error)
	Delete(ctx context.Context, id int64) error
}

type MilestoneService interface {
	List(ctx context.Context, projectID int64) ([]models.Milestone, error)
	Create(ctx context.Context, input models.MilestoneInput) (models.Milestone, error)
	Update(ctx context.Context, id int64, input models.MilestoneInput) (models.Milestone, error)
	Delete(ctx context.Context, id int64) error
}

type ProjectFileService interface {
	List(ctx context.Context, projectID int64) ([]models.ProjectFile, error)
	Delete(ctx context.Context, id int64) error
}

type CaseService interface {
	// List returns published cases; includeUnpublished is honoured for admins only.
	List(ctx context.Context, includeUnpublished bool) ([]models.Case, error)
	BySlug(ctx context.Context, slug string) (models.Case, error)
	Create(ctx context.Context, input models.CaseInput) (models.Case, error)
	Update(ctx context.Context, id int64, input models.CaseInput) (models.Case, error)
	Delete(ctx context.Context, id int64) error
	SetMedia(ctx context.Context, caseID int64, media []models.CaseMedia) (models.Case, error)
}

type ContactService interface {
	Submit(ctx context.Context, contact models.Contact) (models.Contact, error)
	List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
}

type UploadService interface {
	// Upload stores a file for the caller and, when upload.ProjectID is set,
	// attaches it to that project.
	Upload(ctx context.Context, upload models.Upload) (models.StoredObject, error)

	// UploadAvatar stores an image and makes it the caller's avatar.
	UploadAvatar(ctx context.Context, upload models.Upload) (models.StoredObject, error)
}

type LookupService interface {
	// Suggest never fails: upstream errors degrade to an empty suggestion list.
	Suggest(ctx context.Context, kind models.SuggestionKind, query string) json.RawMessage
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
}
