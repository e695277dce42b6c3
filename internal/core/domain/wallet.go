package domain

import "time"

// Wallet is a tracked staking position. Only the address is known at
// creation time; every other attribute is filled in by later updates.
// The JSON tags define the serialized form returned by the API.
type Wallet struct {
	ID           int64     `json:"id"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`

	Wallet        *string `json:"wallet"`
	WalletAddress string  `json:"wallet_address"`

	// Token info
	Token        *string  `json:"token"`
	Network      *string  `json:"network"`
	CurrentPrice *float64 `json:"current_price"`
	BaseStake    *float64 `json:"base_stake"`

	// Current stats
	CurrentStake       *float64 `json:"current_stake"`
	CurrentAwards      *float64 `json:"current_awards"`
	CurrentStakeValue  *float64 `json:"current_stake_value"`
	CurrentAwardsValue *float64 `json:"current_awards_value"`
}

// WalletUpdate is an explicit set of named, typed, optional fields to apply
// to a wallet. A nil field is left untouched. The derived value fields are
// recomputed by the service layer, never supplied by callers.
type WalletUpdate struct {
	Wallet        *string
	WalletAddress *string
	Token         *string
	Network       *string
	CurrentPrice  *float64
	BaseStake     *float64
	CurrentStake  *float64
	CurrentAwards *float64

	CurrentStakeValue  *float64
	CurrentAwardsValue *float64
}

// IsEmpty reports whether the update carries no field at all.
func (u WalletUpdate) IsEmpty() bool {
	return u.Wallet == nil && u.WalletAddress == nil &&
		u.Token == nil && u.Network == nil &&
		u.CurrentPrice == nil && u.BaseStake == nil &&
		u.CurrentStake == nil && u.CurrentAwards == nil
}

// TouchesStats reports whether the update changes any input of the derived
// current_stake_value / current_awards_value fields.
func (u WalletUpdate) TouchesStats() bool {
	return u.CurrentPrice != nil || u.CurrentStake != nil || u.CurrentAwards != nil
}
