package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crypto-dashboard/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, date_created, date_modified, wallet, wallet_address, token, network,
	current_price, base_stake, current_stake, current_awards, current_stake_value, current_awards_value`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a wallet with only its address set and returns the stored
// row, including the DB-assigned id and timestamps.
func (r *WalletRepo) Create(ctx context.Context, address string) (*domain.Wallet, error) {
	query := `INSERT INTO wallets (wallet_address, date_created, date_modified)
		VALUES ($1, NOW(), NOW())
		RETURNING ` + walletColumns

	w, err := scanWallet(r.pool.QueryRow(ctx, query, address))
	if err != nil {
		return nil, fmt.Errorf("insert wallet: %w", err)
	}
	return w, nil
}

// GetByID fetches a wallet by id. Returns (nil, nil) when no row matches.
func (r *WalletRepo) GetByID(ctx context.Context, id int64) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// List returns every wallet ordered by date_modified descending.
func (r *WalletRepo) List(ctx context.Context) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets ORDER BY date_modified DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	defer rows.Close()

	wallets := []domain.Wallet{}
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wallet row: %w", err)
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}
	return wallets, nil
}

// Update applies the non-nil fields of upd in a single UPDATE, bumps
// date_modified, and returns the updated row. Returns (nil, nil) when the
// wallet does not exist.
func (r *WalletRepo) Update(ctx context.Context, id int64, upd domain.WalletUpdate) (*domain.Wallet, error) {
	sets := []string{"date_modified = NOW()"}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Wallet != nil {
		add("wallet", *upd.Wallet)
	}
	if upd.WalletAddress != nil {
		add("wallet_address", *upd.WalletAddress)
	}
	if upd.Token != nil {
		add("token", *upd.Token)
	}
	if upd.Network != nil {
		add("network", *upd.Network)
	}
	if upd.CurrentPrice != nil {
		add("current_price", *upd.CurrentPrice)
	}
	if upd.BaseStake != nil {
		add("base_stake", *upd.BaseStake)
	}
	if upd.CurrentStake != nil {
		add("current_stake", *upd.CurrentStake)
	}
	if upd.CurrentAwards != nil {
		add("current_awards", *upd.CurrentAwards)
	}
	if upd.CurrentStakeValue != nil {
		add("current_stake_value", *upd.CurrentStakeValue)
	}
	if upd.CurrentAwardsValue != nil {
		add("current_awards_value", *upd.CurrentAwardsValue)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE wallets SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), walletColumns,
	)

	w, err := scanWallet(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update wallet: %w", err)
	}
	return w, nil
}

// Delete removes a wallet and reports whether a row was deleted.
func (r *WalletRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM wallets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete wallet: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// scanWallet reads one wallet row from a pgx.Row or pgx.Rows.
func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.DateCreated, &w.DateModified, &w.Wallet, &w.WalletAddress,
		&w.Token, &w.Network, &w.CurrentPrice, &w.BaseStake,
		&w.CurrentStake, &w.CurrentAwards, &w.CurrentStakeValue, &w.CurrentAwardsValue,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}
