package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator turns driver errors into the store's sentinel errors.
type ErrorClassificator interface {
	Classify(err error) error
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
//
//   - nil → nil
//   - [sql.ErrNoRows] → [ErrNotFound]
//   - 23505 unique_violation → [ErrAlreadyExists]
//   - 23503 foreign_key_violation → [ErrReferenceNotFound]
//   - 23514 / 23502 check / not-null violation → [ErrConstraintViolation]
//   - anything else → wrapped [ErrExecutingQuery]
//
// The original error stays in the chain for logging.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case pgerrcode.NoDataFound:
		return ErrNotFound
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// ConstraintName returns the violated constraint of a PostgreSQL error, or "".
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
