package store

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{db: db}
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// CreateUser persists a new user and returns it with server-assigned fields.
// A duplicate email yields [ErrAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := toSQL(psql.Insert("users").
		Columns("name", "email", "password_hash", "is_admin").
		Values(user.Name, strings.ToLower(user.Email), user.PasswordHash, user.IsAdmin).
		Suffix(returning(userColumns)))
	if err != nil {
		return models.User{}, err
	}

	created, err := queryOne(ctx, r.db, query, args, scanUser)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByEmail looks a user up by email, case-insensitively.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := toSQL(psql.Select(userColumns...).From("users").
		Where(sq.Eq{"email": strings.ToLower(strings.TrimSpace(email))}))
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID looks a user up by id.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := toSQL(psql.Select(userColumns...).From("users").Where(sq.Eq{"id": id}))
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

// ListUsers returns users newest first, optionally filtered by a name/email
// substring.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(filter)
	if err != nil {
		return nil, err
	}

	users, err := queryList(ctx, r.db, query, args, scanUser)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// UpdateProfile changes the name and/or avatar of a user.
func (r *userRepository) UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) (models.User, error) {
	query, args, err := buildUpdateProfileQuery(id, update)
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.UpdateProfile", query, args)
}

// UpdatePasswordHash replaces the stored bcrypt hash.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	query, args, err := toSQL(psql.Update("users").
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}

	if err = execAffecting(ctx, r.db, query, args); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdatePasswordHash").Int64("user_id", id).Msg("error updating password")
		return err
	}
	return nil
}

// SetAdmin sets the stored role flag of a user.
func (r *userRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) (models.User, error) {
	query, args, err := toSQL(psql.Update("users").
		Set("is_admin", isAdmin).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)))
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.SetAdmin", query, args)
}

// DeleteUser removes a user; owned rows are removed by ON DELETE CASCADE.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	query, args, err := toSQL(psql.Delete("users").Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}

	if err = execAffecting(ctx, r.db, query, args); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", id).Msg("error deleting user")
		return err
	}
	return nil
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, args []any) (models.User, error) {
	user, err := queryOne(ctx, r.db, query, args, scanUser)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error querying user")
		}
		return models.User{}, err
	}
	return user, nil
}
