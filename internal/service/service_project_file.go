package service

import (
	"context"
	"path"

	"github.com/MKhiriev/agency-portal/internal/adapter"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/models"
)

type projectFileService struct {
	gate                  Gate
	projectFileRepository store.ProjectFileRepository
	projectRepository     store.ProjectRepository
	objects               adapter.ObjectStore

	logger *logger.Logger
}

func NewProjectFileService(gate Gate, files store.ProjectFileRepository, projects store.ProjectRepository, objects adapter.ObjectStore, log *logger.Logger) ProjectFileService {
	return &projectFileService{
		gate:                  gate,
		projectFileRepository: files,
		projectRepository:     projects,
		objects:               objects,
		logger:                log,
	}
}

func (s *projectFileService) List(ctx context.Context, projectID int64) ([]models.ProjectFile, error) {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return nil, err
	}
	if err = checkProjectAccess(ctx, s.projectRepository, scope, projectID); err != nil {
		return nil, err
	}

	return s.projectFileRepository.List(ctx, models.ProjectFileFilter{ProjectID: &projectID, OwnerID: scope.OwnerFilter()})
}

// Delete removes the file record, then the stored object. A failure to
// remove the object is logged and does not fail the call.
func (s *projectFileService) Delete(ctx context.Context, id int64) error {
	scope, err := s.gate.Scope(ctx)
	if err != nil {
		return err
	}

	filter := models.ProjectFileFilter{ID: &id, OwnerID: scope.OwnerFilter()}
	file, err := s.projectFileRepository.Get(ctx, filter)
	if err != nil {
		return storeError(err, ErrFileNotFound)
	}
	if err = s.projectFileRepository.Delete(ctx, filter); err != nil {
		return storeError(err, ErrFileNotFound)
	}

	if err = s.objects.Delete(ctx, path.Base(file.URL)); err != nil {
		logger.FromContext(ctx).Err(err).Int64("file_id", id).Str("url", file.URL).Msg("stored object was not removed")
	}
	return nil
}
