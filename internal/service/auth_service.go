package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"crypto-dashboard/internal/core/domain"
	"crypto-dashboard/internal/core/ports"
	"crypto-dashboard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// apiTokenBytes is the entropy of an opaque API token (hex-encoded to 64 chars).
const apiTokenBytes = 32

// AuthServiceImpl implements ports.AuthService. API requests authenticate
// with an opaque per-user bearer token; the dashboard uses a signed session
// token carried in a cookie. The two mechanisms are independent.
type AuthServiceImpl struct {
	userRepo   ports.UserRepository
	hashSvc    ports.HashService
	sessionSvc ports.SessionTokenService
	log        zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	userRepo ports.UserRepository,
	hashSvc ports.HashService,
	sessionSvc ports.SessionTokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		hashSvc:    hashSvc,
		sessionSvc: sessionSvc,
		log:        log,
	}
}

// Authenticate resolves a user from an opaque API bearer token. The user is
// returned to the caller; nothing is stored in request-scoped state.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperror.ErrInvalidToken()
	}

	user, err := s.userRepo.GetByAPIToken(ctx, token)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup user by token: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken()
	}

	s.log.Debug().Str("username", user.Username).Msg("api request authenticated")
	return user, nil
}

// RenewToken rotates the user's API token and returns the new value. The
// old token stops working immediately.
func (s *AuthServiceImpl) RenewToken(ctx context.Context, user *domain.User) (string, error) {
	token, err := generateToken(apiTokenBytes)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	if err := s.userRepo.UpdateAPIToken(ctx, user.ID, token); err != nil {
		return "", apperror.InternalError(fmt.Errorf("store renewed token: %w", err))
	}

	s.log.Info().Str("username", user.Username).Msg("api token renewed")
	return token, nil
}

// Login validates credentials and returns a signed session token for the
// dashboard cookie.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, user.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.sessionSvc.Generate(user.ID, user.Username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate session token: %w", err))
	}

	s.log.Info().Str("username", username).Msg("dashboard login")
	return token, expiry, nil
}

// AuthenticateSession resolves a user from a dashboard session token.
func (s *AuthServiceImpl) AuthenticateSession(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperror.ErrInvalidSession()
	}

	claims, err := s.sessionSvc.Validate(token)
	if err != nil {
		return nil, apperror.ErrInvalidSession()
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup session user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrInvalidSession()
	}
	return user, nil
}

// Bootstrap creates the initial admin account when the users table is
// empty. It is a no-op otherwise.
func (s *AuthServiceImpl) Bootstrap(ctx context.Context, username, password string) (*domain.User, error) {
	n, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count users: %w", err))
	}
	if n > 0 {
		return nil, nil
	}
	if username == "" || password == "" {
		return nil, apperror.Validation("bootstrap admin username and password are required on first run")
	}

	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	token, err := generateToken(apiTokenBytes)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		APIToken:     token,
		Role:         domain.RoleAdmin,
		DateCreated:  now,
		DateModified: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create admin user: %w", err))
	}

	s.log.Info().Str("username", username).Msg("bootstrap admin account created")
	return user, nil
}

// generateToken generates a random hex string of n bytes.
func generateToken(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
