package transfer

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/transferflow-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		snapshot domain.TransferSnapshot
		wantFrom string
		wantTo   string
	}{
		{
			name:     "Own account uses account names",
			snapshot: domain.TransferSnapshot{Channel: domain.ChannelOwnAccount, Details: domain.OwnAccountDetails{FromAccountID: "1", ToAccountID: "2"}},
			wantFrom: "Premium Checking",
			wantTo:   "MaxiSave Account",
		},
		{
			name:     "Other bank shows bank and account number",
			snapshot: domain.TransferSnapshot{Channel: domain.ChannelExternalBank, Details: domain.ExternalBankDetails{BankName: "First Bank", AccountNumber: "0012"}},
			wantFrom: "N/A",
			wantTo:   "First Bank 0012",
		},
		{
			name:     "Mobile money shows the number",
			snapshot: domain.TransferSnapshot{Channel: domain.ChannelMobileMoney, Details: domain.MobileMoneyDetails{Mobile: "0712345678"}},
			wantFrom: "N/A",
			wantTo:   "0712345678",
		},
		{
			name:     "Bill payment shows biller and bill number",
			snapshot: domain.TransferSnapshot{Channel: domain.ChannelBillPayment, Details: domain.BillPaymentDetails{Biller: "Electric Co", BillNumber: "E-9"}},
			wantFrom: "N/A",
			wantTo:   "Electric Co (E-9)",
		},
		{
			name:     "Scheduled has no recipient",
			snapshot: domain.TransferSnapshot{Channel: domain.ChannelScheduled, Details: domain.ScheduledDetails{Date: fixedNow}},
			wantFrom: "N/A",
			wantTo:   "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.snapshot.Amount = decimal.NewFromInt(2500)

			summary := Summarize(tt.snapshot, demoAccounts())

			assert.Equal(t, tt.wantFrom, summary.From)
			assert.Equal(t, tt.wantTo, summary.To)
			assert.Equal(t, "$2,500.00", summary.Amount)
			assert.Equal(t, tt.snapshot.Channel.Label(), summary.Method)
			require.GreaterOrEqual(t, len(summary.Rows), 4)
			assert.Equal(t, "Amount", summary.Rows[3].Label)
		})
	}
}

func TestSummarize_OptionalRows(t *testing.T) {
	snapshot := domain.TransferSnapshot{
		Channel: domain.ChannelScheduled,
		Amount:  decimal.NewFromInt(10),
		Details: domain.ScheduledDetails{Date: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)},
	}
	summary := Summarize(snapshot, nil)
	assert.Equal(t, SummaryRow{Label: "Date", Value: "2024-04-01"}, summary.Rows[len(summary.Rows)-1])

	snapshot = domain.TransferSnapshot{
		Channel: domain.ChannelLoanRepayment,
		Amount:  decimal.NewFromInt(10),
		Memo:    "March installment",
		Details: domain.LoanRepaymentDetails{LoanAccount: "LN-001"},
	}
	summary = Summarize(snapshot, nil)
	assert.Equal(t, SummaryRow{Label: "Reason", Value: "March installment"}, summary.Rows[len(summary.Rows)-1])
}

func TestWorkflow_Summary(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWorkflow(t, newGatedSubmitter(), nil, Config{})

	summary, err := w.Summary(ctx)
	require.NoError(t, err)
	assert.Nil(t, summary, "no summary before confirmation is requested")

	fillOwnAccountTransfer(t, w, "1", "2", "100.00")
	_, err = w.RequestConfirmation(ctx)
	require.NoError(t, err)

	summary, err = w.Summary(ctx)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "Premium Checking", summary.From)
	assert.Equal(t, "MaxiSave Account", summary.To)
	assert.Equal(t, "$100.00", summary.Amount)
}

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Transfer Successful!", StatusMessage(domain.StateSettled))
	assert.Equal(t, "Transfer Failed.", StatusMessage(domain.StateFailed))
	assert.Equal(t, "Processing...", StatusMessage(domain.StateProcessing))
	assert.Empty(t, StatusMessage(domain.StateEditing))
}
