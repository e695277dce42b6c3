package postgres

import (
	"context"
	"errors"
	"fmt"

	"crypto-dashboard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, password_hash, api_token, role, date_created, date_modified`

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, username, password_hash, api_token, role, date_created, date_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Username, u.PasswordHash, u.APIToken, u.Role,
		u.DateCreated, u.DateModified,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by its UUID. Returns (nil, nil) when absent.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByUsername fetches a user by username. Returns (nil, nil) when absent.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

// GetByAPIToken fetches a user by its opaque bearer token.
// Returns (nil, nil) when no user holds the token.
func (r *UserRepo) GetByAPIToken(ctx context.Context, token string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE api_token = $1`
	return r.getOne(ctx, query, token)
}

// UpdateAPIToken stores a freshly rotated token for the user.
func (r *UserRepo) UpdateAPIToken(ctx context.Context, id uuid.UUID, token string) error {
	query := `UPDATE users SET api_token = $1, date_modified = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, token, id)
	if err != nil {
		return fmt.Errorf("update api token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}

// Count returns the number of users.
func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	u := &domain.User{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.APIToken, &u.Role,
		&u.DateCreated, &u.DateModified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
