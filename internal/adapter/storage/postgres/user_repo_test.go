package postgres

import (
	"context"
	"testing"
	"time"

	"crypto-dashboard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser() *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		Username:     "deafmice",
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		APIToken:     "0123456789abcdef",
		Role:         domain.RoleAdmin,
		DateCreated:  time.Now().UTC().Truncate(time.Microsecond),
		DateModified: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func userRow(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "username", "password_hash", "api_token", "role", "date_created", "date_modified",
	}).AddRow(u.ID, u.Username, u.PasswordHash, u.APIToken, u.Role, u.DateCreated, u.DateModified)
}

func TestUserRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	u := newTestUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID, u.Username, u.PasswordHash, u.APIToken, u.Role, u.DateCreated, u.DateModified).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), u)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByAPIToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	u := newTestUser()

	mock.ExpectQuery("SELECT .+ FROM users WHERE api_token").
		WithArgs(u.APIToken).
		WillReturnRows(userRow(u))

	result, err := repo.GetByAPIToken(context.Background(), u.APIToken)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, u.ID, result.ID)
	assert.Equal(t, u.Username, result.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByAPIToken_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM users WHERE api_token").
		WithArgs("unknown").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByAPIToken(context.Background(), "unknown")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	u := newTestUser()

	mock.ExpectQuery("SELECT .+ FROM users WHERE username").
		WithArgs(u.Username).
		WillReturnRows(userRow(u))

	result, err := repo.GetByUsername(context.Background(), u.Username)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.RoleAdmin, result.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateAPIToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE users SET api_token").
		WithArgs("newtoken", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateAPIToken(context.Background(), id, "newtoken")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdateAPIToken_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE users SET api_token").
		WithArgs("newtoken", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateAPIToken(context.Background(), id, "newtoken")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Count(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
