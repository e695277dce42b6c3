package ports

import (
	"context"
	"time"

	"crypto-dashboard/internal/core/domain"

	"github.com/google/uuid"
)

// WalletService defines the wallet CRUD business logic.
type WalletService interface {
	// Create requires a non-empty address; every other field starts unset.
	Create(ctx context.Context, address string) (*domain.Wallet, error)
	Get(ctx context.Context, id int64) (*domain.Wallet, error)
	List(ctx context.Context) ([]domain.Wallet, error)
	// Update applies the given fields and recomputes the derived
	// current_stake_value / current_awards_value when their inputs change.
	Update(ctx context.Context, id int64, upd domain.WalletUpdate) (*domain.Wallet, error)
	Delete(ctx context.Context, id int64) error
}

// AuthService defines authentication business logic. Handlers call
// Authenticate / AuthenticateSession explicitly at the top of gated
// endpoints; the resolved user is passed around as a value, never stashed
// in ambient request state.
type AuthService interface {
	// Authenticate resolves a user from an opaque API bearer token.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	// RenewToken rotates the user's API token and returns the new value.
	RenewToken(ctx context.Context, user *domain.User) (string, error)
	// Login validates credentials and returns a signed session token for
	// the dashboard cookie.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
	// AuthenticateSession resolves a user from a dashboard session token.
	AuthenticateSession(ctx context.Context, token string) (*domain.User, error)
	// Bootstrap creates the initial admin account when no users exist.
	Bootstrap(ctx context.Context, username, password string) (*domain.User, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// SessionTokenService signs and validates dashboard session tokens. This
// mechanism is distinct from the opaque API bearer tokens.
type SessionTokenService interface {
	Generate(userID uuid.UUID, username string) (string, time.Time, error)
	Validate(token string) (*SessionClaims, error)
}

// SessionClaims holds the parsed session token claims.
type SessionClaims struct {
	UserID   uuid.UUID
	Username string
}
