package overview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/transferflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccountDirectory is a mock implementation of AccountDirectory
type MockAccountDirectory struct {
	mock.Mock
}

func (m *MockAccountDirectory) List(ctx context.Context) ([]*domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

// MockTransferHistory is a mock implementation of TransferHistory
type MockTransferHistory struct {
	mock.Mock
}

func (m *MockTransferHistory) ListRecent(ctx context.Context, limit int) ([]*domain.TransferRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TransferRecord), args.Error(1)
}

func TestGetOverview(t *testing.T) {
	ctx := context.Background()

	accounts := []*domain.Account{
		{ID: "1", Name: "Premium Checking", Balance: decimal.RequireFromString("324569.00"), Type: domain.AccountTypeChecking},
		{ID: "2", Name: "MaxiSave Account", Balance: decimal.RequireFromString("1245786.00"), Type: domain.AccountTypeSavings},
		{ID: "3", Name: "Investment Portfolio", Balance: decimal.RequireFromString("894245.00"), Type: domain.AccountTypeInvestment},
		{ID: "4", Name: "Joint Checking", Balance: decimal.RequireFromString("100.50"), Type: domain.AccountTypeChecking},
	}
	recent := []*domain.TransferRecord{
		{ID: uuid.New(), From: "Premium Checking", To: "MaxiSave Account", Amount: decimal.NewFromInt(2500), Date: time.Now(), Status: domain.TransferStatusCompleted},
	}

	accountRepo := new(MockAccountDirectory)
	transferRepo := new(MockTransferHistory)
	accountRepo.On("List", ctx).Return(accounts, nil)
	transferRepo.On("ListRecent", ctx, 5).Return(recent, nil)

	service := NewOverviewService(accountRepo, transferRepo)
	result, err := service.GetOverview(ctx, 5)

	require.NoError(t, err)
	assert.Len(t, result.Accounts, 4)
	assert.True(t, result.TotalBalance.Equal(decimal.RequireFromString("2464700.50")), "got %s", result.TotalBalance)
	assert.True(t, result.BalancesByType[domain.AccountTypeChecking].Equal(decimal.RequireFromString("324669.50")))
	assert.True(t, result.BalancesByType[domain.AccountTypeSavings].Equal(decimal.RequireFromString("1245786")))
	assert.True(t, result.BalancesByType[domain.AccountTypeInvestment].Equal(decimal.RequireFromString("894245")))
	assert.Equal(t, recent, result.RecentTransfers)

	accountRepo.AssertExpectations(t)
	transferRepo.AssertExpectations(t)
}

func TestGetOverview_DefaultLimit(t *testing.T) {
	ctx := context.Background()

	accountRepo := new(MockAccountDirectory)
	transferRepo := new(MockTransferHistory)
	accountRepo.On("List", ctx).Return([]*domain.Account{}, nil)
	transferRepo.On("ListRecent", ctx, DefaultRecentLimit).Return([]*domain.TransferRecord{}, nil)

	service := NewOverviewService(accountRepo, transferRepo)
	result, err := service.GetOverview(ctx, 0)

	require.NoError(t, err)
	assert.True(t, result.TotalBalance.IsZero())
	assert.Empty(t, result.RecentTransfers)
	transferRepo.AssertExpectations(t)
}

func TestGetOverview_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("database unavailable")

	t.Run("Account listing fails", func(t *testing.T) {
		accountRepo := new(MockAccountDirectory)
		transferRepo := new(MockTransferHistory)
		accountRepo.On("List", ctx).Return(nil, dbErr)

		_, err := NewOverviewService(accountRepo, transferRepo).GetOverview(ctx, 3)

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to list accounts")
		transferRepo.AssertNotCalled(t, "ListRecent", mock.Anything, mock.Anything)
	})

	t.Run("History listing fails", func(t *testing.T) {
		accountRepo := new(MockAccountDirectory)
		transferRepo := new(MockTransferHistory)
		accountRepo.On("List", ctx).Return([]*domain.Account{}, nil)
		transferRepo.On("ListRecent", ctx, 3).Return(nil, dbErr)

		_, err := NewOverviewService(accountRepo, transferRepo).GetOverview(ctx, 3)

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to list recent transfers")
	})
}
