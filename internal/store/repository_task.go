package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
	sq "github.com/Masterminds/squirrel"
)

type taskRepository struct {
	db *DB
}

// NewTaskRepository constructs a [TaskRepository].
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{db: db}
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *taskRepository) Create(ctx context.Context, task models.Task) (models.Task, error) {
	if task.Status == "" {
		task.Status = models.TaskTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	query, args, err := toSQL(psql.Insert("tasks").
		Columns("project_id", "title", "description", "status", "priority", "due_date").
		Values(task.ProjectID, task.Title, task.Description, string(task.Status), string(task.Priority), task.DueDate).
		Suffix(returning(taskColumns)))
	if err != nil {
		return models.Task{}, err
	}

	created, err := queryOne(ctx, r.db, query, args, scanTask)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskRepository.Create").Int64("project_id", task.ProjectID).Msg("error creating task")
		return models.Task{}, err
	}
	return created, nil
}

func (r *taskRepository) Get(ctx context.Context, filter models.TaskFilter) (models.Task, error) {
	if filter.ID == nil {
		return models.Task{}, ErrNotFound
	}

	query, args, err := buildSelectTasksQuery(filter)
	if err != nil {
		return models.Task{}, err
	}

	task, err := queryOne(ctx, r.db, query, args, scanTask)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*taskRepository.Get").Int64("task_id", *filter.ID).Msg("error reading task")
		}
		return models.Task{}, err
	}
	return task, nil
}

func (r *taskRepository) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	query, args, err := buildSelectTasksQuery(filter)
	if err != nil {
		return nil, err
	}

	tasks, err := queryList(ctx, r.db, query, args, scanTask)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskRepository.List").Msg("error listing tasks")
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, filter models.TaskFilter, input models.TaskInput) (models.Task, error) {
	query, args, err := buildUpdateTaskQuery(filter, input)
	if err != nil {
		return models.Task{}, err
	}

	task, err := queryOne(ctx, r.db, query, args, scanTask)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*taskRepository.Update").Msg("error updating task")
		}
		return models.Task{}, err
	}
	return task, nil
}

func (r *taskRepository) Delete(ctx context.Context, filter models.TaskFilter) error {
	if filter.ID == nil {
		return ErrNotFound
	}

	q := psql.Delete("tasks").Where(sq.Eq{"id": *filter.ID})
	if filter.OwnerID != nil {
		q = q.Where(ownedProjects(*filter.OwnerID))
	}
	query, args, err := toSQL(q)
	if err != nil {
		return err
	}

	err = execAffecting(ctx, r.db, query, args)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*taskRepository.Delete").Int64("task_id", *filter.ID).Msg("error deleting task")
	}
	return err
}
