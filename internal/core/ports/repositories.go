package ports

import (
	"context"

	"crypto-dashboard/internal/core/domain"

	"github.com/google/uuid"
)

// WalletRepository defines persistence operations for wallets.
// Lookup methods return (nil, nil) when no row matches; translating that
// into a not-found error is the service layer's job.
type WalletRepository interface {
	// Create inserts a wallet with only its address set and returns the
	// stored row including DB-assigned id and timestamps.
	Create(ctx context.Context, address string) (*domain.Wallet, error)
	GetByID(ctx context.Context, id int64) (*domain.Wallet, error)
	// List returns every wallet ordered by date_modified descending.
	List(ctx context.Context) ([]domain.Wallet, error)
	// Update applies the non-nil fields of upd, bumps date_modified, and
	// returns the updated row. Returns (nil, nil) when the row is absent.
	Update(ctx context.Context, id int64, upd domain.WalletUpdate) (*domain.Wallet, error)
	// Delete removes the wallet and reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByAPIToken(ctx context.Context, token string) (*domain.User, error)
	UpdateAPIToken(ctx context.Context, id uuid.UUID, token string) error
	Count(ctx context.Context) (int64, error)
}
