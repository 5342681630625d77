package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
	sq "github.com/Masterminds/squirrel"
)

type clientProfileRepository struct {
	db *DB
}

// NewClientProfileRepository constructs a [ClientProfileRepository].
func NewClientProfileRepository(db *DB, logger *logger.Logger) ClientProfileRepository {
	logger.Debug().Msg("creating client profile repository")
	return &clientProfileRepository{db: db}
}

func scanClientProfile(row rowScanner) (models.ClientProfile, error) {
	var p models.ClientProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Type, &p.LastName, &p.FirstName, &p.MiddleName,
		&p.INN, &p.CompanyName, &p.LegalAddress, &p.BIK, &p.BankName, &p.AccountNumber,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *clientProfileRepository) GetByUserID(ctx context.Context, userID int64) (models.ClientProfile, error) {
	query, args, err := toSQL(psql.Select(clientProfileColumns...).
		From("client_profiles").
		Where(sq.Eq{"user_id": userID}))
	if err != nil {
		return models.ClientProfile{}, err
	}

	profile, err := queryOne(ctx, r.db, query, args, scanClientProfile)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*clientProfileRepository.GetByUserID").Int64("user_id", userID).Msg("error reading client profile")
		}
		return models.ClientProfile{}, err
	}
	return profile, nil
}

// Upsert inserts the profile or replaces every field of the existing one.
func (r *clientProfileRepository) Upsert(ctx context.Context, profile models.ClientProfile) (models.ClientProfile, error) {
	query, args, err := toSQL(psql.Insert("client_profiles").
		Columns(
			"user_id", "type", "last_name", "first_name", "middle_name",
			"inn", "company_name", "legal_address", "bik", "bank_name", "account_number",
		).
		Values(
			profile.UserID, string(profile.Type), profile.LastName, profile.FirstName, profile.MiddleName,
			profile.INN, profile.CompanyName, profile.LegalAddress, profile.BIK, profile.BankName, profile.AccountNumber,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			type = EXCLUDED.type,
			last_name = EXCLUDED.last_name,
			first_name = EXCLUDED.first_name,
			middle_name = EXCLUDED.middle_name,
			inn = EXCLUDED.inn,
			company_name = EXCLUDED.company_name,
			legal_address = EXCLUDED.legal_address,
			bik = EXCLUDED.bik,
			bank_name = EXCLUDED.bank_name,
			account_number = EXCLUDED.account_number,
			updated_at = NOW() ` + returning(clientProfileColumns)))
	if err != nil {
		return models.ClientProfile{}, err
	}

	saved, err := queryOne(ctx, r.db, query, args, scanClientProfile)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientProfileRepository.Upsert").Int64("user_id", profile.UserID).Msg("error saving client profile")
		return models.ClientProfile{}, err
	}
	return saved, nil
}
