// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

// caseRepository is the PostgreSQL-backed implementation of [CaseRepository].
// Tags are stored as TEXT[] and decoded through a pgtype.Map because
// database/sql has no native array support. A Map is not safe for concurrent
// use, so every scan gets its own.
type caseRepository struct {
	db *DB
}

// NewCaseRepository constructs a [CaseRepository].
func NewCaseRepository(db *DB, logger *logger.Logger) CaseRepository {
	logger.Debug().Msg("creating case repository")
	return &caseRepository{db: db}
}

func scanCase(row rowScanner) (models.Case, error) {
	var c models.Case
	err := row.Scan(
		&c.ID, &c.Slug, &c.Title, &c.Client, &c.Summary, &c.Content,
		&c.CoverURL, pgtype.NewMap().SQLScanner(&c.Tags), &c.Published, &c.CreatedAt, &c.UpdatedAt,
	)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c, err
}

func scanCaseMedia(row rowScanner) (models.CaseMedia, error) {
	var m models.CaseMedia
	err := row.Scan(&m.ID, &m.CaseID, &m.URL, &m.Kind, &m.Caption, &m.Order)
	return m, err
}

// Create inserts a case without media. A duplicate slug yields [ErrAlreadyExists].
func (r *caseRepository) Create(ctx context.Context, c models.Case) (models.Case, error) {
	query, args, err := toSQL(psql.Insert("cases").
		Columns("slug", "title", "client", "summary", "content", "cover_url", "tags", "published").
		Values(c.Slug, c.Title, c.Client, c.Summary, c.Content, optionalString(c.CoverURL), normalizeTags(c.Tags), c.Published).
		Suffix(returning(caseColumns)))
	if err != nil {
		return models.Case{}, err
	}

	created, err := queryOne(ctx, r.db, query, args, scanCase)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*caseRepository.Create").Str("slug", c.Slug).Msg("error creating case")
		return models.Case{}, err
	}
	created.Media = []models.CaseMedia{}
	return created, nil
}

// Get returns a single case matched by id or slug, without media.
func (r *caseRepository) Get(ctx context.Context, filter models.CaseFilter) (models.Case, error) {
	if filter.ID == nil && filter.Slug == nil {
		return models.Case{}, ErrNotFound
	}

	query, args, err := buildSelectCasesQuery(filter)
	if err != nil {
		return models.Case{}, err
	}

	c, err := queryOne(ctx, r.db, query, args, scanCase)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*caseRepository.Get").Msg("error reading case")
		}
		return models.Case{}, err
	}
	return c, nil
}

func (r *caseRepository) List(ctx context.Context, filter models.CaseFilter) ([]models.Case, error) {
	query, args, err := buildSelectCasesQuery(filter)
	if err != nil {
		return nil, err
	}

	cases, err := queryList(ctx, r.db, query, args, scanCase)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*caseRepository.List").Msg("error listing cases")
		return nil, err
	}
	return cases, nil
}

func (r *caseRepository) Update(ctx context.Context, id int64, input models.CaseInput) (models.Case, error) {
	query, args, err := buildUpdateCaseQuery(id, input)
	if err != nil {
		return models.Case{}, err
	}

	c, err := queryOne(ctx, r.db, query, args, scanCase)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*caseRepository.Update").Int64("case_id", id).Msg("error updating case")
		}
		return models.Case{}, err
	}
	return c, nil
}

// Delete removes a case and its media.
func (r *caseRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := toSQL(psql.Delete("cases").Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}

	err = execAffecting(ctx, r.db, query, args)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*caseRepository.Delete").Int64("case_id", id).Msg("error deleting case")
	}
	return err
}

func (r *caseRepository) ListMedia(ctx context.Context, caseIDs ...int64) ([]models.CaseMedia, error) {
	if len(caseIDs) == 0 {
		return []models.CaseMedia{}, nil
	}

	query, args, err := buildSelectCaseMediaQuery(caseIDs)
	if err != nil {
		return nil, err
	}

	media, err := queryList(ctx, r.db, query, args, scanCaseMedia)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*caseRepository.ListMedia").Msg("error listing case media")
		return nil, err
	}
	return media, nil
}

// ReplaceMedia deletes every media row of the case and inserts media in one
// transaction. Readers observe either the old or the new set. A missing case
// yields [ErrNotFound] and changes nothing.
func (r *caseRepository) ReplaceMedia(ctx context.Context, caseID int64, media []models.CaseMedia) ([]models.CaseMedia, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*caseRepository.ReplaceMedia").
			Int64("case_id", caseID).
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// lock the case row so concurrent replacements serialize
	var lockedID int64
	lockErr := tx.QueryRowContext(ctx, `SELECT id FROM cases WHERE id = $1 FOR UPDATE`, caseID).Scan(&lockedID)
	if lockErr != nil {
		if errors.Is(lockErr, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.Err(lockErr).Str("func", "*caseRepository.ReplaceMedia").Int64("case_id", caseID).Msg("failed to lock case")
		return nil, r.db.classify(lockErr)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM case_media WHERE case_id = $1`, caseID); err != nil {
		log.Err(err).Str("func", "*caseRepository.ReplaceMedia").Int64("case_id", caseID).Msg("failed to delete old media")
		return nil, r.db.classify(err)
	}

	saved := make([]models.CaseMedia, 0, len(media))
	if len(media) > 0 {
		insert := psql.Insert("case_media").Columns("case_id", "url", "kind", "caption", `"order"`)
		for _, m := range media {
			insert = insert.Values(caseID, m.URL, string(m.Kind), m.Caption, m.Order)
		}

		query, args, buildErr := toSQL(insert.Suffix(returning(caseMediaColumns)))
		if buildErr != nil {
			return nil, buildErr
		}

		rows, queryErr := tx.QueryContext(ctx, query, args...)
		if queryErr != nil {
			log.Err(queryErr).Str("func", "*caseRepository.ReplaceMedia").Int64("case_id", caseID).Msg("failed to insert media")
			return nil, r.db.classify(queryErr)
		}
		for rows.Next() {
			item, scanErr := scanCaseMedia(rows)
			if scanErr != nil {
				rows.Close()
				return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			saved = append(saved, item)
		}
		rows.Close()
		if rowsErr := rows.Err(); rowsErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*caseRepository.ReplaceMedia").
			Int64("case_id", caseID).
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return saved, nil
}
