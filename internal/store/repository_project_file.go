package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
	sq "github.com/Masterminds/squirrel"
)

type projectFileRepository struct {
	db *DB
}

// NewProjectFileRepository constructs a [ProjectFileRepository].
func NewProjectFileRepository(db *DB, logger *logger.Logger) ProjectFileRepository {
	logger.Debug().Msg("creating project file repository")
	return &projectFileRepository{db: db}
}

func scanProjectFile(row rowScanner) (models.ProjectFile, error) {
	var f models.ProjectFile
	err := row.Scan(&f.ID, &f.ProjectID, &f.Name, &f.URL, &f.Size, &f.MimeType, &f.CreatedAt)
	return f, err
}

func (r *projectFileRepository) Create(ctx context.Context, file models.ProjectFile) (models.ProjectFile, error) {
	query, args, err := toSQL(psql.Insert("project_files").
		Columns("project_id", "name", "url", "size", "mime_type").
		Values(file.ProjectID, file.Name, file.URL, file.Size, file.MimeType).
		Suffix(returning(projectFileColumns)))
	if err != nil {
		return models.ProjectFile{}, err
	}

	created, err := queryOne(ctx, r.db, query, args, scanProjectFile)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectFileRepository.Create").Int64("project_id", file.ProjectID).Msg("error creating project file")
		return models.ProjectFile{}, err
	}
	return created, nil
}

func (r *projectFileRepository) Get(ctx context.Context, filter models.ProjectFileFilter) (models.ProjectFile, error) {
	if filter.ID == nil {
		return models.ProjectFile{}, ErrNotFound
	}

	query, args, err := buildSelectProjectFilesQuery(filter)
	if err != nil {
		return models.ProjectFile{}, err
	}

	file, err := queryOne(ctx, r.db, query, args, scanProjectFile)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*projectFileRepository.Get").Int64("file_id", *filter.ID).Msg("error reading project file")
		}
		return models.ProjectFile{}, err
	}
	return file, nil
}

func (r *projectFileRepository) List(ctx context.Context, filter models.ProjectFileFilter) ([]models.ProjectFile, error) {
	query, args, err := buildSelectProjectFilesQuery(filter)
	if err != nil {
		return nil, err
	}

	files, err := queryList(ctx, r.db, query, args, scanProjectFile)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectFileRepository.List").Msg("error listing project files")
		return nil, err
	}
	return files, nil
}

func (r *projectFileRepository) Delete(ctx context.Context, filter models.ProjectFileFilter) error {
	if filter.ID == nil {
		return ErrNotFound
	}

	q := psql.Delete("project_files").Where(sq.Eq{"id": *filter.ID})
	if filter.OwnerID != nil {
		q = q.Where(ownedProjects(*filter.OwnerID))
	}
	query, args, err := toSQL(q)
	if err != nil {
		return err
	}

	err = execAffecting(ctx, r.db, query, args)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*projectFileRepository.Delete").Int64("file_id", *filter.ID).Msg("error deleting project file")
	}
	return err
}
