package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
	sq "github.com/Masterminds/squirrel"
)

type projectRepository struct {
	db *DB
}

// NewProjectRepository constructs a [ProjectRepository].
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{db: db}
}

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Status, &p.Deadline, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Create inserts a project. An unknown owner yields [ErrReferenceNotFound].
func (r *projectRepository) Create(ctx context.Context, project models.Project) (models.Project, error) {
	if project.Status == "" {
		project.Status = models.ProjectPlanning
	}

	query, args, err := toSQL(psql.Insert("projects").
		Columns("user_id", "name", "description", "status", "deadline").
		Values(project.UserID, project.Name, project.Description, string(project.Status), project.Deadline).
		Suffix(returning(projectColumns)))
	if err != nil {
		return models.Project{}, err
	}

	created, err := queryOne(ctx, r.db, query, args, scanProject)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.Create").Int64("user_id", project.UserID).Msg("error creating project")
		return models.Project{}, err
	}
	return created, nil
}

func (r *projectRepository) Get(ctx context.Context, filter models.ProjectFilter) (models.Project, error) {
	if filter.ID == nil {
		return models.Project{}, ErrNotFound
	}

	query, args, err := buildSelectProjectsQuery(filter)
	if err != nil {
		return models.Project{}, err
	}

	project, err := queryOne(ctx, r.db, query, args, scanProject)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.Get").Int64("project_id", *filter.ID).Msg("error reading project")
		}
		return models.Project{}, err
	}
	return project, nil
}

func (r *projectRepository) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	query, args, err := buildSelectProjectsQuery(filter)
	if err != nil {
		return nil, err
	}

	projects, err := queryList(ctx, r.db, query, args, scanProject)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.List").Msg("error listing projects")
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, filter models.ProjectFilter, input models.ProjectInput) (models.Project, error) {
	query, args, err := buildUpdateProjectQuery(filter, input)
	if err != nil {
		return models.Project{}, err
	}

	project, err := queryOne(ctx, r.db, query, args, scanProject)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.Update").Msg("error updating project")
		}
		return models.Project{}, err
	}
	return project, nil
}

// Delete removes a project with its tasks, milestones and files.
func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := toSQL(psql.Delete("projects").Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}

	err = execAffecting(ctx, r.db, query, args)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.Delete").Int64("project_id", id).Msg("error deleting project")
	}
	return err
}
