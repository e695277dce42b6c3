package dto

import "crypto-dashboard/internal/core/domain"

// GetWalletRequest binds the wallet_id query parameter for single-wallet
// lookups and deletes.
type GetWalletRequest struct {
	WalletID int64 `form:"wallet_id" binding:"required"`
}

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
}

// UpdateWalletRequest is the request body for wallet updates. The stake and
// awards fields are pointers so that an explicit zero is distinguishable
// from an absent field.
type UpdateWalletRequest struct {
	WalletID      int64    `json:"wallet_id" binding:"required"`
	Wallet        string   `json:"wallet" binding:"required"`
	WalletAddress string   `json:"wallet_address" binding:"required"`
	CurrentStake  *float64 `json:"current_stake" binding:"required"`
	CurrentAwards *float64 `json:"current_awards" binding:"required"`

	Token        *string  `json:"token,omitempty"`
	Network      *string  `json:"network,omitempty"`
	CurrentPrice *float64 `json:"current_price,omitempty"`
	BaseStake    *float64 `json:"base_stake,omitempty"`
}

// ToWalletUpdate converts the request body into a domain update.
func (r *UpdateWalletRequest) ToWalletUpdate() domain.WalletUpdate {
	return domain.WalletUpdate{
		Wallet:        &r.Wallet,
		WalletAddress: &r.WalletAddress,
		Token:         r.Token,
		Network:       r.Network,
		CurrentPrice:  r.CurrentPrice,
		BaseStake:     r.BaseStake,
		CurrentStake:  r.CurrentStake,
		CurrentAwards: r.CurrentAwards,
	}
}

// LoginForm binds the dashboard login form.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// WalletsResponse wraps the full wallet listing.
type WalletsResponse struct {
	Wallets []domain.Wallet `json:"wallets"`
}

// WalletCreatedResponse wraps a newly created wallet.
type WalletCreatedResponse struct {
	Wallet domain.Wallet `json:"wallet"`
}

// TokenResponse is the response body for API token renewal.
type TokenResponse struct {
	Token string `json:"token"`
}
