package store

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", sql.ErrNoRows), ErrNotFound},
		{"unique violation", pgError(pgerrcode.UniqueViolation), ErrAlreadyExists},
		{"foreign key violation", pgError(pgerrcode.ForeignKeyViolation), ErrReferenceNotFound},
		{"check violation", pgError(pgerrcode.CheckViolation), ErrConstraintViolation},
		{"not null violation", pgError(pgerrcode.NotNullViolation), ErrConstraintViolation},
		{"other pg error", pgError(pgerrcode.SyntaxError), ErrExecutingQuery},
		{"network error", errors.New("connection reset"), ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, c.Classify(tt.err), tt.want)
		})
	}

	assert.NoError(t, c.Classify(nil))
}

func TestClassify_KeepsDriverError(t *testing.T) {
	original := pgError(pgerrcode.UniqueViolation)
	err := NewPostgresErrorClassifier().Classify(original)

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
}

func TestConstraintName(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "cases_slug_key"})
	assert.Equal(t, "cases_slug_key", ConstraintName(err))
	assert.Empty(t, ConstraintName(errors.New("plain")))
}
