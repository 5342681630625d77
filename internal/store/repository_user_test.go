package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userColumns)
	for _, u := range users {
		rows.AddRow(u.ID, u.Name, u.Email, u.PasswordHash, u.IsAdmin, u.AvatarURL, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("John", "john@example.com", "bcrypt-hash", false).
		WillReturnRows(userRows(models.User{
			ID: 1, Name: "John", Email: "john@example.com", PasswordHash: "bcrypt-hash", CreatedAt: now, UpdatedAt: now,
		}))

	created, err := repo.CreateUser(context.Background(), models.User{
		Name: "John", Email: "John@Example.com", PasswordHash: "bcrypt-hash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "john@example.com", created.Email)
	assert.Nil(t, created.AvatarURL)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByEmail_LowercasesLookup(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs("john@example.com").
		WillReturnRows(userRows(models.User{ID: 7, Email: "john@example.com", IsAdmin: true}))

	found, err := repo.FindUserByEmail(context.Background(), "  JOHN@example.com ")
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.ID)
	assert.True(t, found.IsAdmin)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.FindUserByID(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestListUsers_Search(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE \\(name ILIKE \\$1 OR email ILIKE \\$2\\)").
		WithArgs(`%a\_b%`, `%a\_b%`).
		WillReturnRows(userRows(models.User{ID: 1}, models.User{ID: 2}))

	users, err := repo.ListUsers(context.Background(), models.UserFilter{Search: " a_b "})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY").
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.ListUsers(context.Background(), models.UserFilter{})
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUpdateProfile_ClearsAvatar(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("UPDATE users SET avatar_url = \\$1, name = \\$2, updated_at = NOW\\(\\) WHERE id = \\$3").
		WithArgs(nil, "New Name", int64(3)).
		WillReturnRows(userRows(models.User{ID: 3, Name: "New Name"}))

	user, err := repo.UpdateProfile(context.Background(), 3, models.ProfileUpdate{
		Name:      ptr("New Name"),
		AvatarURL: ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
}

func TestUpdatePasswordHash_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("new-hash", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePasswordHash(context.Background(), 9, "new-hash")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAdmin_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("UPDATE users SET is_admin = \\$1").
		WithArgs(true, int64(5)).
		WillReturnRows(userRows(models.User{ID: 5, IsAdmin: true}))

	user, err := repo.SetAdmin(context.Background(), 5, true)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestDeleteUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteUser(context.Background(), 5))
	assert.ErrorIs(t, repo.DeleteUser(context.Background(), 6), ErrNotFound)
}
