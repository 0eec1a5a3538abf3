package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	customerrors "github.com/taekwondodev/go-role-login/internal/customErrors"
	"github.com/taekwondodev/go-role-login/internal/models"
)

type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CheckUserExists(ctx context.Context, username string) error
	SaveUser(ctx context.Context, user *models.User) error
	Ping(ctx context.Context) error
	Close() error
}

// UserRepositoryImpl serves both postgres and sqlite; the queries use
// numbered placeholders understood by lib/pq and go-sqlite3.
type UserRepositoryImpl struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	query := `
        SELECT sub, username, password, role, created_at, updated_at
        FROM users
        WHERE username = $1
    `

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.Sub,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}

	return &user, nil
}

func (r *UserRepositoryImpl) CheckUserExists(ctx context.Context, username string) error {
	query := "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)"

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return fmt.Errorf("check user %q: %w", username, err)
	}

	if exists {
		return customerrors.ErrUsernameAlreadyExists
	}
	return nil
}

func (r *UserRepositoryImpl) SaveUser(ctx context.Context, user *models.User) error {
	if user.Sub == uuid.Nil {
		user.Sub = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	query := `
        INSERT INTO users (sub, username, password, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.ExecContext(
		ctx,
		query,
		user.Sub.String(),
		user.Username,
		user.Password,
		string(user.Role),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return customerrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("save user %q: %w", user.Username, err)
	}
	return nil
}

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func (r *UserRepositoryImpl) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *UserRepositoryImpl) Close() error {
	return r.db.Close()
}
