package store

import (
	"context"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
)

type contactRepository struct {
	db *DB
}

// NewContactRepository constructs a [ContactRepository].
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{db: db}
}

func scanContact(row rowScanner) (models.Contact, error) {
	var c models.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Message, &c.Reason, &c.CreatedAt)
	return c, err
}

func (r *contactRepository) Create(ctx context.Context, contact models.Contact) (models.Contact, error) {
	query, args, err := toSQL(psql.Insert("contacts").
		Columns("name", "email", "phone", "company", "message", "reason").
		Values(contact.Name, contact.Email, contact.Phone, contact.Company, contact.Message, contact.Reason).
		Suffix(returning(contactColumns)))
	if err != nil {
		return models.Contact{}, err
	}

	created, err := queryOne(ctx, r.db, query, args, scanContact)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contactRepository.Create").Msg("error saving contact")
		return models.Contact{}, err
	}
	return created, nil
}

// List returns contacts newest first, optionally filtered by reason.
func (r *contactRepository) List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	query, args, err := buildSelectContactsQuery(filter)
	if err != nil {
		return nil, err
	}

	contacts, err := queryList(ctx, r.db, query, args, scanContact)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*contactRepository.List").Msg("error listing contacts")
		return nil, err
	}
	return contacts, nil
}
