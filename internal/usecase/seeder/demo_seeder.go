package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/transferflow-backend/internal/domain"
)

// Fixed IDs for the demo transfer history
var (
	DEMO_TRANSFER_1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	DEMO_TRANSFER_2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	DEMO_TRANSFER_3 = uuid.MustParse("00000000-0000-0000-0000-000000000003")
	DEMO_TRANSFER_4 = uuid.MustParse("00000000-0000-0000-0000-000000000004")
)

// DemoAccounts returns the accounts offered on a fresh install
func DemoAccounts() []*domain.Account {
	return []*domain.Account{
		{
			ID:           "1",
			Name:         "Premium Checking",
			MaskedNumber: "•••• 4856",
			Balance:      decimal.NewFromInt(324569),
			Type:         domain.AccountTypeChecking,
		},
		{
			ID:           "2",
			Name:         "MaxiSave Account",
			MaskedNumber: "•••• 7821",
			Balance:      decimal.NewFromInt(1245786),
			Type:         domain.AccountTypeSavings,
		},
		{
			ID:           "3",
			Name:         "Investment Portfolio",
			MaskedNumber: "•••• 3094",
			Balance:      decimal.NewFromInt(894245),
			Type:         domain.AccountTypeInvestment,
		},
	}
}

// DemoTransfers returns the recent transfers shown on a fresh install, newest first
func DemoTransfers() []*domain.TransferRecord {
	day := func(d int) time.Time { return time.Date(2023, time.October, d, 0, 0, 0, 0, time.UTC) }
	return []*domain.TransferRecord{
		{ID: DEMO_TRANSFER_1, From: "Premium Checking", To: "MaxiSave Account", Amount: decimal.NewFromInt(2500), Date: day(22), Status: domain.TransferStatusCompleted},
		{ID: DEMO_TRANSFER_2, From: "MaxiSave Account", To: "External Bank", Amount: decimal.NewFromInt(5000), Date: day(15), Status: domain.TransferStatusCompleted},
		{ID: DEMO_TRANSFER_3, From: "Premium Checking", To: "Credit Card", Amount: decimal.NewFromInt(1200), Date: day(10), Status: domain.TransferStatusCompleted},
		{ID: DEMO_TRANSFER_4, From: "Investment Portfolio", To: "External Broker", Amount: decimal.NewFromInt(10000), Date: day(5), Status: domain.TransferStatusPending},
	}
}

// DemoSeeder handles seeding of the demo accounts and transfer history
type DemoSeeder struct {
	accounts  domain.AccountRepository
	transfers domain.TransferRecordRepository
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(accounts domain.AccountRepository, transfers domain.TransferRecordRepository) *DemoSeeder {
	return &DemoSeeder{
		accounts:  accounts,
		transfers: transfers,
	}
}

// Seed ensures the demo data exists
// Logic:
//  1. Create every demo account that GetByID reports as not found
//  2. Seed the transfer history only when it is empty
func (s *DemoSeeder) Seed(ctx context.Context) error {
	for _, account := range DemoAccounts() {
		_, err := s.accounts.GetByID(ctx, account.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return fmt.Errorf("failed to look up account %s: %w", account.ID, err)
		}

		if err := account.Validate(); err != nil {
			return err
		}
		if err := s.accounts.Create(ctx, account); err != nil {
			return err
		}
	}

	existing, err := s.transfers.ListRecent(ctx, 1)
	if err != nil {
		return fmt.Errorf("failed to list recent transfers: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	// Oldest first so insertion order matches dates
	transfers := DemoTransfers()
	for i := len(transfers) - 1; i >= 0; i-- {
		if err := transfers[i].Validate(); err != nil {
			return err
		}
		if err := s.transfers.Create(ctx, transfers[i]); err != nil {
			return err
		}
	}
	return nil
}
