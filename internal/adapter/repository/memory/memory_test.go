package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/transferflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	checking := &domain.Account{ID: "1", Name: "Premium Checking", Balance: decimal.NewFromInt(10), Type: domain.AccountTypeChecking}
	savings := &domain.Account{ID: "2", Name: "MaxiSave Account", Balance: decimal.NewFromInt(20), Type: domain.AccountTypeSavings}
	require.NoError(t, repo.Create(ctx, checking))
	require.NoError(t, repo.Create(ctx, savings))

	assert.Error(t, repo.Create(ctx, checking), "duplicate ids are rejected")

	got, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "MaxiSave Account", got.Name)

	_, err = repo.GetByID(ctx, "9")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "1", accounts[0].ID)
	assert.Equal(t, "2", accounts[1].ID)

	// Returned accounts are copies
	accounts[0].Name = "changed"
	got, err = repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Premium Checking", got.Name)
}

func TestTransferRecordRepository_ListRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewTransferRecordRepository()

	day := func(d int) time.Time { return time.Date(2023, time.October, d, 0, 0, 0, 0, time.UTC) }
	record := func(to string, date time.Time) *domain.TransferRecord {
		return &domain.TransferRecord{ID: uuid.New(), From: "Premium Checking", To: to, Amount: decimal.NewFromInt(1), Date: date, Status: domain.TransferStatusCompleted}
	}

	require.NoError(t, repo.Create(ctx, record("oldest", day(5))))
	require.NoError(t, repo.Create(ctx, record("newest", day(22))))
	require.NoError(t, repo.Create(ctx, record("middle-a", day(10))))
	require.NoError(t, repo.Create(ctx, record("middle-b", day(10))))

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "All records", limit: 0, want: []string{"newest", "middle-b", "middle-a", "oldest"}},
		{name: "Limited", limit: 2, want: []string{"newest", "middle-b"}},
		{name: "Limit above size", limit: 10, want: []string{"newest", "middle-b", "middle-a", "oldest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.ListRecent(ctx, tt.limit)
			require.NoError(t, err)

			got := make([]string, 0, len(records))
			for _, r := range records {
				got = append(got, r.To)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransferRecordRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewTransferRecordRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &domain.TransferRecord{ID: uuid.New(), From: "a", To: "b", Amount: decimal.NewFromInt(1), Date: time.Now(), Status: domain.TransferStatusCompleted})
		}()
	}
	wg.Wait()

	records, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 50)
}
