package service

import (
	"github.com/MKhiriev/agency-portal/internal/adapter"
	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/validators"
)

type Services struct {
	Gate                 Gate
	AuthService          AuthService
	UserService          UserService
	ClientProfileService ClientProfileService
	ProjectService       ProjectService
	TaskService          TaskService
	MilestoneService     MilestoneService
	ProjectFileService   ProjectFileService
	CaseService          CaseService
	ContactService       ContactService
	UploadService        UploadService
	LookupService        LookupService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, err
	}

	gate := NewGate(storages.UserRepository)
	validator := validators.NewInputValidator()

	return &Services{
		Gate:                 gate,
		AuthService:          NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:          NewUserService(gate, storages.UserRepository, validator, logger),
		ClientProfileService: NewClientProfileService(gate, storages.ClientProfileRepository, validator, logger),
		ProjectService:       NewProjectService(gate, storages.ProjectRepository, validator, logger),
		TaskService:          NewTaskService(gate, storages.TaskRepository, storages.ProjectRepository, validator, logger),
		MilestoneService:     NewMilestoneService(gate, storages.MilestoneRepository, storages.ProjectRepository, validator, logger),
		ProjectFileService:   NewProjectFileService(gate, storages.ProjectFileRepository, storages.ProjectRepository, adapters.Objects, logger),
		CaseService:          NewCaseService(gate, storages.CaseRepository, validator, logger),
		ContactService:       NewContactService(gate, storages.ContactRepository, adapters.Mailer, validator, cfg, logger),
		UploadService:        NewUploadService(gate, storages, adapters.Objects, cfg.Storage.Files, logger),
		LookupService:        NewLookupService(adapters.Suggestions, logger),
		AppInfoService:       appInfoService,
	}, nil
}
