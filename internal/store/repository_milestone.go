package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
	sq "github.com/Masterminds/squirrel"
)

type milestoneRepository struct {
	db *DB
}

// NewMilestoneRepository constructs a [MilestoneRepository].
func NewMilestoneRepository(db *DB, logger *logger.Logger) MilestoneRepository {
	logger.Debug().Msg("creating milestone repository")
	return &milestoneRepository{db: db}
}

func scanMilestone(row rowScanner) (models.Milestone, error) {
	var m models.Milestone
	err := row.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Description, &m.DueDate, &m.Completed, &m.CreatedAt)
	return m, err
}

func (r *milestoneRepository) Create(ctx context.Context, milestone models.Milestone) (models.Milestone, error) {
	query, args, err := toSQL(psql.Insert("milestones").
		Columns("project_id", "title", "description", "due_date", "completed").
		Values(milestone.ProjectID, milestone.Title, milestone.Description, milestone.DueDate, milestone.Completed).
		Suffix(returning(milestoneColumns)))
	if err != nil {
		return models.Milestone{}, err
	}

	created, err := queryOne(ctx, r.db, query, args, scanMilestone)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*milestoneRepository.Create").Int64("project_id", milestone.ProjectID).Msg("error creating milestone")
		return models.Milestone{}, err
	}
	return created, nil
}

func (r *milestoneRepository) Get(ctx context.Context, filter models.MilestoneFilter) (models.Milestone, error) {
	if filter.ID == nil {
		return models.Milestone{}, ErrNotFound
	}

	query, args, err := buildSelectMilestonesQuery(filter)
	if err != nil {
		return models.Milestone{}, err
	}

	milestone, err := queryOne(ctx, r.db, query, args, scanMilestone)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*milestoneRepository.Get").Int64("milestone_id", *filter.ID).Msg("error reading milestone")
		}
		return models.Milestone{}, err
	}
	return milestone, nil
}

func (r *milestoneRepository) List(ctx context.Context, filter models.MilestoneFilter) ([]models.Milestone, error) {
	query, args, err := buildSelectMilestonesQuery(filter)
	if err != nil {
		return nil, err
	}

	milestones, err := queryList(ctx, r.db, query, args, scanMilestone)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*milestoneRepository.List").Msg("error listing milestones")
		return nil, err
	}
	return milestones, nil
}

func (r *milestoneRepository) Update(ctx context.Context, filter models.MilestoneFilter, input models.MilestoneInput) (models.Milestone, error) {
	query, args, err := buildUpdateMilestoneQuery(filter, input)
	if err != nil {
		return models.Milestone{}, err
	}

	milestone, err := queryOne(ctx, r.db, query, args, scanMilestone)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*milestoneRepository.Update").Msg("error updating milestone")
		}
		return models.Milestone{}, err
	}
	return milestone, nil
}

func (r *milestoneRepository) Delete(ctx context.Context, filter models.MilestoneFilter) error {
	if filter.ID == nil {
		return ErrNotFound
	}

	q := psql.Delete("milestones").Where(sq.Eq{"id": *filter.ID})
	if filter.OwnerID != nil {
		q = q.Where(ownedProjects(*filter.OwnerID))
	}
	query, args, err := toSQL(q)
	if err != nil {
		return err
	}

	err = execAffecting(ctx, r.db, query, args)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*milestoneRepository.Delete").Int64("milestone_id", *filter.ID).Msg("error deleting milestone")
	}
	return err
}
