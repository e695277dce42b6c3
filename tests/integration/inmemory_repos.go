package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"crypto-dashboard/internal/core/domain"

	"github.com/google/uuid"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	nextID  int64
	wallets map[int64]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[int64]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, address string) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now()
	w := &domain.Wallet{
		ID:            r.nextID,
		DateCreated:   now,
		DateModified:  now,
		WalletAddress: address,
	}
	r.wallets[w.ID] = w

	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id int64) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) List(ctx context.Context) ([]domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Wallet, 0, len(r.wallets))
	for _, w := range r.wallets {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DateModified.Equal(out[j].DateModified) {
			return out[i].ID > out[j].ID
		}
		return out[i].DateModified.After(out[j].DateModified)
	})
	return out, nil
}

func (r *inMemoryWalletRepo) Update(ctx context.Context, id int64, upd domain.WalletUpdate) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}

	if upd.Wallet != nil {
		w.Wallet = upd.Wallet
	}
	if upd.WalletAddress != nil {
		w.WalletAddress = *upd.WalletAddress
	}
	if upd.Token != nil {
		w.Token = upd.Token
	}
	if upd.Network != nil {
		w.Network = upd.Network
	}
	if upd.CurrentPrice != nil {
		w.CurrentPrice = upd.CurrentPrice
	}
	if upd.BaseStake != nil {
		w.BaseStake = upd.BaseStake
	}
	if upd.CurrentStake != nil {
		w.CurrentStake = upd.CurrentStake
	}
	if upd.CurrentAwards != nil {
		w.CurrentAwards = upd.CurrentAwards
	}
	if upd.CurrentStakeValue != nil {
		w.CurrentStakeValue = upd.CurrentStakeValue
	}
	if upd.CurrentAwardsValue != nil {
		w.CurrentAwardsValue = upd.CurrentAwardsValue
	}
	w.DateModified = time.Now()

	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.wallets[id]; !ok {
		return false, nil
	}
	delete(r.wallets, id)
	return true, nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) GetByAPIToken(ctx context.Context, token string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.APIToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) UpdateAPIToken(ctx context.Context, id uuid.UUID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user not found: %s", id)
	}
	u.APIToken = token
	u.DateModified = time.Now()
	return nil
}

func (r *inMemoryUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}
