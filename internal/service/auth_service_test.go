package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"crypto-dashboard/internal/core/domain"
	"crypto-dashboard/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthService(t *testing.T) (*AuthServiceImpl, *mocks.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	hashSvc := NewArgon2HashService()
	sessionSvc := NewJWTSessionService("test-session-secret-32bytes!!!!!", time.Hour, "test-issuer")
	return NewAuthService(userRepo, hashSvc, sessionSvc, zerolog.Nop()), userRepo
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := NewArgon2HashService().Hash(password)
	require.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Username:     "deafmice",
		PasswordHash: hash,
		APIToken:     "0123456789abcdef",
		Role:         domain.RoleAdmin,
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	svc, userRepo := newAuthService(t)
	u := testUser(t, "hunter22hunter22")

	userRepo.EXPECT().GetByAPIToken(gomock.Any(), u.APIToken).Return(u, nil)

	got, err := svc.Authenticate(context.Background(), u.APIToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	svc, userRepo := newAuthService(t)

	userRepo.EXPECT().GetByAPIToken(gomock.Any(), "bogus").Return(nil, nil)

	_, err := svc.Authenticate(context.Background(), "bogus")
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestAuthenticate_EmptyToken(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Authenticate(context.Background(), "")
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestRenewToken(t *testing.T) {
	svc, userRepo := newAuthService(t)
	u := testUser(t, "hunter22hunter22")

	var stored string
	userRepo.EXPECT().UpdateAPIToken(gomock.Any(), u.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, token string) error {
			stored = token
			return nil
		})

	token, err := svc.RenewToken(context.Background(), u)
	require.NoError(t, err)
	assert.Len(t, token, 64, "32 random bytes hex-encoded")
	assert.Equal(t, stored, token)
	assert.NotEqual(t, u.APIToken, token)
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo := newAuthService(t)
	u := testUser(t, "hunter22hunter22")

	userRepo.EXPECT().GetByUsername(gomock.Any(), "deafmice").Return(u, nil)

	token, expiry, err := svc.Login(context.Background(), "deafmice", "hunter22hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiry.After(time.Now()))

	// The session token round-trips back to the same user.
	userRepo.EXPECT().GetByID(gomock.Any(), u.ID).Return(u, nil)
	got, err := svc.AuthenticateSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, u.Username, got.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo := newAuthService(t)
	u := testUser(t, "hunter22hunter22")

	userRepo.EXPECT().GetByUsername(gomock.Any(), "deafmice").Return(u, nil)

	_, _, err := svc.Login(context.Background(), "deafmice", "wrong")
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, userRepo := newAuthService(t)

	userRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestAuthenticateSession_GarbageToken(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.AuthenticateSession(context.Background(), "not-a-jwt")
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestAuthenticateSession_DeletedUser(t *testing.T) {
	svc, userRepo := newAuthService(t)
	u := testUser(t, "hunter22hunter22")

	userRepo.EXPECT().GetByUsername(gomock.Any(), "deafmice").Return(u, nil)
	token, _, err := svc.Login(context.Background(), "deafmice", "hunter22hunter22")
	require.NoError(t, err)

	// User removed after the session was issued.
	userRepo.EXPECT().GetByID(gomock.Any(), u.ID).Return(nil, nil)

	_, err = svc.AuthenticateSession(context.Background(), token)
	assertStatus(t, err, http.StatusUnauthorized)
}

func TestBootstrap_CreatesAdminOnEmptyTable(t *testing.T) {
	svc, userRepo := newAuthService(t)

	userRepo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)

	var created *domain.User
	userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *domain.User) error {
			created = u
			return nil
		})

	user, err := svc.Bootstrap(context.Background(), "admin", "first-run-password")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, created)
	assert.Equal(t, domain.RoleAdmin, created.Role)
	assert.Len(t, created.APIToken, 64)
	assert.NotEqual(t, "first-run-password", created.PasswordHash)
}

func TestBootstrap_NoopWhenUsersExist(t *testing.T) {
	svc, userRepo := newAuthService(t)

	userRepo.EXPECT().Count(gomock.Any()).Return(int64(2), nil)

	user, err := svc.Bootstrap(context.Background(), "admin", "pw")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestBootstrap_MissingPassword(t *testing.T) {
	svc, userRepo := newAuthService(t)

	userRepo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)

	_, err := svc.Bootstrap(context.Background(), "admin", "")
	assertStatus(t, err, http.StatusBadRequest)
}
