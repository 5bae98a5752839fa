package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrithikcode/TO-DO-LIST/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateGoogleID = errors.New("google account already linked")
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, google_id, profile_picture, auth_provider, created_at`

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.GoogleID,
		&user.ProfilePicture,
		&user.AuthProvider,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateLocal inserts a password-backed user. Uniqueness is enforced by the
// users table constraints so two concurrent registrations with the same
// username or email cannot both succeed.
func (r *UserRepository) CreateLocal(ctx context.Context, username, email string, passwordHash []byte) (models.User, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, auth_provider, created_at)
		VALUES ($1, $2, $3, 'local', NOW())
		RETURNING ` + userColumns

	user, err := scanUser(r.pool.QueryRow(ctx, query, username, email, passwordHash))
	if err != nil {
		return models.User{}, mapUniqueViolation(err)
	}
	return user, nil
}

func (r *UserRepository) CreateGoogle(ctx context.Context, username, email, googleID, picture string) (models.User, error) {
	const query = `
		INSERT INTO users (username, email, google_id, profile_picture, auth_provider, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), 'google', NOW())
		RETURNING ` + userColumns

	user, err := scanUser(r.pool.QueryRow(ctx, query, username, email, googleID, picture))
	if err != nil {
		return models.User{}, mapUniqueViolation(err)
	}
	return user, nil
}

func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, identifier))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, googleID))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash []byte) error {
	const query = `UPDATE users SET password_hash = $2 WHERE id = $1 AND auth_provider = 'local'`
	cmd, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "username"):
		return ErrDuplicateUsername
	case strings.Contains(pgErr.ConstraintName, "email"):
		return ErrDuplicateEmail
	case strings.Contains(pgErr.ConstraintName, "google"):
		return ErrDuplicateGoogleID
	}
	return err
}
