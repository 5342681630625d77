package store

import (
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

// sliceAwareConverter lets []string reach the mock driver, mirroring the pgx
// stdlib driver which encodes slices as arrays.
type sliceAwareConverter struct{}

func (sliceAwareConverter) ConvertValue(v any) (driver.Value, error) {
	if tags, ok := v.([]string); ok {
		return tags, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.ValueConverterOption(sliceAwareConverter{}))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		conn.Close()
	})

	return NewDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func ptr[T any](v T) *T {
	return &v
}
