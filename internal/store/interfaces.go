package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/agency-portal/models"
)

// UserRepository persists user accounts. Emails are stored lowercased.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) (models.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
	SetAdmin(ctx context.Context, id int64, isAdmin bool) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ClientProfileRepository persists the single billing profile of a user.
type ClientProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (models.ClientProfile, error)
	Upsert(ctx context.Context, profile models.ClientProfile) (models.ClientProfile, error)
}

// ProjectRepository persists projects. A non-nil filter.OwnerID restricts
// every operation to that owner's rows.
type ProjectRepository interface {
	Create(ctx context.Context, project models.Project) (models.Project, error)
	Get(ctx context.Context, filter models.ProjectFilter) (models.Project, error)
	List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	Update(ctx context.Context, filter models.ProjectFilter, input models.ProjectInput) (models.Project, error)
	Delete(ctx context.Context, id int64) error
}

// TaskRepository persists tasks. A non-nil OwnerID restricts rows to tasks
// of projects owned by that user.
type TaskRepository interface {
	Create(ctx context.Context, task models.Task) (models.Task, error)
	Get(ctx context.Context, filter models.TaskFilter) (models.Task, error)
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, filter models.TaskFilter, input models.TaskInput) (models.Task, error)
	Delete(ctx context.Context, filter models.TaskFilter) error
}

// MilestoneRepository persists milestones, scoped like [TaskRepository].
type MilestoneRepository interface {
	Create(ctx context.Context, milestone models.Milestone) (models.Milestone, error)
	Get(ctx context.Context, filter models.MilestoneFilter) (models.Milestone, error)
	List(ctx context.Context, filter models.MilestoneFilter) ([]models.Milestone, error)
	Update(ctx context.Context, filter models.MilestoneFilter, input models.MilestoneInput) (models.Milestone, error)
	Delete(ctx context.Context, filter models.MilestoneFilter) error
}

// ProjectFileRepository persists metadata of uploaded project files,
// scoped like [TaskRepository].
type ProjectFileRepository interface {
	Create(ctx context.Context, file models.ProjectFile) (models.ProjectFile, error)
	Get(ctx context.Context, filter models.ProjectFileFilter) (models.ProjectFile, error)
	List(ctx context.Context, filter models.ProjectFileFilter) ([]models.ProjectFile, error)
	Delete(ctx context.Context, filter models.ProjectFileFilter) error
}

// CaseRepository persists portfolio cases and their ordered media.
type CaseRepository interface {
	Create(ctx context.Context, c models.Case) (models.Case, error)
	Get(ctx context.Context, filter models.CaseFilter) (models.Case, error)
	List(ctx context.Context, filter models.CaseFilter) ([]models.Case, error)
	Update(ctx context.Context, id int64, input models.CaseInput) (models.Case, error)
	Delete(ctx context.Context, id int64) error

	// ListMedia returns the media of the given cases ordered by case and position.
	ListMedia(ctx context.Context, caseIDs ...int64) ([]models.CaseMedia, error)

	// ReplaceMedia atomically swaps the whole media set of a case.
	ReplaceMedia(ctx context.Context, caseID int64, media []models.CaseMedia) ([]models.CaseMedia, error)
}

// ContactRepository persists contact form submissions. Contacts are immutable.
type ContactRepository interface {
	Create(ctx context.Context, contact models.Contact) (models.Contact, error)
	List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error)
}

// HealthChecker reports database reachability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
