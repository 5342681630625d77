package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientProfileRepository_GetMissing(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewClientProfileRepository(db, logger.Nop())

	mock.ExpectQuery("FROM client_profiles WHERE user_id = \\$1").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(clientProfileColumns))

	_, err := repo.GetByUserID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientProfileRepository_Upsert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewClientProfileRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO client_profiles .+ ON CONFLICT \\(user_id\\) DO UPDATE SET").
		WithArgs(int64(2), "LEGAL", nil, nil, nil, "7707083893", "ACME", "Moscow", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(clientProfileColumns).AddRow(
			int64(1), int64(2), "LEGAL", nil, nil, nil,
			"7707083893", "ACME", "Moscow", nil, nil, nil,
			testNow, testNow,
		))

	saved, err := repo.Upsert(context.Background(), models.ClientProfile{
		UserID:       2,
		Type:         models.ClientLegal,
		INN:          ptr("7707083893"),
		CompanyName:  ptr("ACME"),
		LegalAddress: ptr("Moscow"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ClientLegal, saved.Type)
	require.NotNil(t, saved.INN)
	assert.Equal(t, "7707083893", *saved.INN)
	assert.Nil(t, saved.LastName)
}

func TestContactRepository_CreateAndList(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewContactRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO contacts").
		WithArgs("Ann", "ann@example.com", nil, nil, "Hello", "brief").
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow(int64(1), "Ann", "ann@example.com", nil, nil, "Hello", "brief", testNow))
	mock.ExpectQuery("FROM contacts WHERE reason = \\$1").
		WithArgs("brief").
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow(int64(1), "Ann", "ann@example.com", nil, nil, "Hello", "brief", testNow))

	ctx := context.Background()
	created, err := repo.Create(ctx, models.Contact{
		Name: "Ann", Email: "ann@example.com", Message: "Hello", Reason: ptr("brief"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Nil(t, created.Phone)

	listed, err := repo.List(ctx, models.ContactFilter{Reason: ptr("brief")})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
