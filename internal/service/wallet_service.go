package service

import (
	"context"
	"fmt"
	"strings"

	"crypto-dashboard/internal/core/domain"
	"crypto-dashboard/internal/core/ports"
	"crypto-dashboard/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService. Every operation is a
// single unit of work against the store; missing rows always surface as a
// structured not-found error, never as a nil dereference.
type WalletServiceImpl struct {
	repo ports.WalletRepository
	log  zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(repo ports.WalletRepository, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{repo: repo, log: log}
}

// Create adds a wallet with only its address set. Duplicate addresses are
// allowed; two wallets may track the same address.
func (s *WalletServiceImpl) Create(ctx context.Context, address string) (*domain.Wallet, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, apperror.Validation("wallet_address is required")
	}

	w, err := s.repo.Create(ctx, address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().Int64("wallet_id", w.ID).Str("wallet_address", w.WalletAddress).Msg("wallet created")
	return w, nil
}

// Get returns the wallet with the given id.
func (s *WalletServiceImpl) Get(ctx context.Context, id int64) (*domain.Wallet, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWalletNotFound(id)
	}
	return w, nil
}

// List returns all wallets ordered by last modification, newest first.
func (s *WalletServiceImpl) List(ctx context.Context) ([]domain.Wallet, error) {
	wallets, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}
	return wallets, nil
}

// Update applies the given fields to the wallet. When any input of the
// derived value fields changes (price, stake, awards), both derived values
// are recomputed from the effective post-update attributes and written in
// the same statement.
func (s *WalletServiceImpl) Update(ctx context.Context, id int64, upd domain.WalletUpdate) (*domain.Wallet, error) {
	if upd.IsEmpty() {
		return nil, apperror.Validation("no fields to update")
	}
	if upd.WalletAddress != nil && strings.TrimSpace(*upd.WalletAddress) == "" {
		return nil, apperror.Validation("wallet_address must not be empty")
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup wallet for update: %w", err))
	}
	if current == nil {
		return nil, apperror.ErrWalletNotFound(id)
	}

	if upd.TouchesStats() {
		recomputeValues(current, &upd)
	}

	w, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}
	if w == nil {
		// Row vanished between lookup and update.
		return nil, apperror.ErrWalletNotFound(id)
	}

	s.log.Info().Int64("wallet_id", id).Msg("wallet updated")
	return w, nil
}

// Delete removes the wallet permanently.
func (s *WalletServiceImpl) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("delete wallet: %w", err))
	}
	if !deleted {
		return apperror.ErrWalletNotFound(id)
	}

	s.log.Info().Int64("wallet_id", id).Msg("wallet deleted")
	return nil
}

// recomputeValues fills the derived value fields of upd from the effective
// post-update price, stake, and awards. A derived value stays untouched
// while either of its inputs is still unset.
func recomputeValues(current *domain.Wallet, upd *domain.WalletUpdate) {
	price := coalesce(upd.CurrentPrice, current.CurrentPrice)
	stake := coalesce(upd.CurrentStake, current.CurrentStake)
	awards := coalesce(upd.CurrentAwards, current.CurrentAwards)

	if price != nil && stake != nil {
		v := *stake * *price
		upd.CurrentStakeValue = &v
	}
	if price != nil && awards != nil {
		v := *awards * *price
		upd.CurrentAwardsValue = &v
	}
}

func coalesce(next, current *float64) *float64 {
	if next != nil {
		return next
	}
	return current
}
