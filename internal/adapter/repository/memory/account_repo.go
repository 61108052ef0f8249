package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/simaogato/transferflow-backend/internal/domain"
)

// AccountRepository implements domain.AccountRepository in process memory
type AccountRepository struct {
	mu       sync.RWMutex
	order    []string
	accounts map[string]domain.Account
}

// NewAccountRepository creates a new in-memory AccountRepository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]domain.Account),
	}
}

// List retrieves every account in insertion order
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(r.order))
	for _, id := range r.order {
		account := r.accounts[id]
		accounts = append(accounts, &account)
	}
	return accounts, nil
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	return &account, nil
}

// Create stores a new account
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID]; exists {
		return fmt.Errorf("account %s already exists", account.ID)
	}
	r.accounts[account.ID] = *account
	r.order = append(r.order, account.ID)
	return nil
}
