package store

import "github.com/MKhiriev/agency-portal/internal/logger"

// Storages groups every repository handed to the service layer.
type Storages struct {
	UserRepository          UserRepository
	ClientProfileRepository ClientProfileRepository
	ProjectRepository       ProjectRepository
	TaskRepository          TaskRepository
	MilestoneRepository     MilestoneRepository
	ProjectFileRepository   ProjectFileRepository
	CaseRepository          CaseRepository
	ContactRepository       ContactRepository
	HealthChecker           HealthChecker
}

// NewStorages builds all repositories over one connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:          NewUserRepository(db, log),
		ClientProfileRepository: NewClientProfileRepository(db, log),
		ProjectRepository:       NewProjectRepository(db, log),
		TaskRepository:          NewTaskRepository(db, log),
		MilestoneRepository:     NewMilestoneRepository(db, log),
		ProjectFileRepository:   NewProjectFileRepository(db, log),
		CaseRepository:          NewCaseRepository(db, log),
		ContactRepository:       NewContactRepository(db, log),
		HealthChecker:           db,
	}
}
