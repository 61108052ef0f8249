package overview

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/transferflow-backend/internal/domain"
)

// DefaultRecentLimit is the number of recent transfers shown when no limit is given
const DefaultRecentLimit = 10

// Result represents the account overview shown next to the transfer form
type Result struct {
	Accounts        []*domain.Account
	TotalBalance    decimal.Decimal
	BalancesByType  map[domain.AccountType]decimal.Decimal
	RecentTransfers []*domain.TransferRecord
}

// OverviewService handles overview-related operations
type OverviewService struct {
	AccountRepo  domain.AccountDirectory
	TransferRepo domain.TransferHistory
}

// NewOverviewService creates a new OverviewService instance
func NewOverviewService(
	accountRepo domain.AccountDirectory,
	transferRepo domain.TransferHistory,
) *OverviewService {
	return &OverviewService{
		AccountRepo:  accountRepo,
		TransferRepo: transferRepo,
	}
}

// GetOverview assembles the account overview
// Logic:
//   - Accounts: every account, in display order
//   - TotalBalance: sum of all account balances
//   - BalancesByType: sum of balances per account type
//   - RecentTransfers: newest transfers first, at most limit entries
func (s *OverviewService) GetOverview(ctx context.Context, limit int) (*Result, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	// 1. Get all accounts and sum their balances
	accounts, err := s.AccountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	total := decimal.Zero
	byType := make(map[domain.AccountType]decimal.Decimal)
	for _, account := range accounts {
		total = total.Add(account.Balance)
		byType[account.Type] = byType[account.Type].Add(account.Balance)
	}

	// 2. Get the recent transfers
	recent, err := s.TransferRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transfers: %w", err)
	}

	return &Result{
		Accounts:        accounts,
		TotalBalance:    total,
		BalancesByType:  byType,
		RecentTransfers: recent,
	}, nil
}
