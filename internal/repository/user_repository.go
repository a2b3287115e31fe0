package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"NOTES_BACK-END/internal/common"
	"NOTES_BACK-END/internal/models"
)

// UserRepository persists user identities and password hashes.
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and returns its generated id. A taken username
// yields common.ErrDuplicateUsername straight from the unique constraint.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (models.UserID, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`

	var id models.UserID
	err := r.db.QueryRow(ctx, query, username, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, common.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

// FindByUsername retrieves a user, including the password hash.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`

	user := &models.User{}
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
