package transfer

import (
	"context"
	"fmt"

	"github.com/simaogato/transferflow-backend/internal/domain"
	"github.com/simaogato/transferflow-backend/internal/format"
)

const notApplicable = "N/A"

// SummaryRow is one label/value line of the confirmation dialog
type SummaryRow struct {
	Label string
	Value string
}

// Summary is the confirmation dialog content for a frozen snapshot
type Summary struct {
	Method string
	From   string
	To     string
	Amount string
	Rows   []SummaryRow
}

// Summarize builds the confirmation content. Every channel yields the same row
// layout; rows that do not apply to the channel are omitted.
func Summarize(snapshot domain.TransferSnapshot, accounts []*domain.Account) Summary {
	from, to := Parties(snapshot, accounts)
	summary := Summary{
		Method: snapshot.Channel.Label(),
		From:   from,
		To:     to,
		Amount: format.USD(snapshot.Amount),
	}

	summary.Rows = []SummaryRow{
		{Label: "Method", Value: summary.Method},
		{Label: "From", Value: summary.From},
		{Label: "To", Value: summary.To},
		{Label: "Amount", Value: summary.Amount},
	}
	if details, ok := snapshot.Details.(domain.ScheduledDetails); ok {
		summary.Rows = append(summary.Rows, SummaryRow{Label: "Date", Value: details.Date.Format(domain.DateLayout)})
	}
	if snapshot.Memo != "" {
		summary.Rows = append(summary.Rows, SummaryRow{Label: "Reason", Value: snapshot.Memo})
	}
	return summary
}

// Parties returns the source and recipient labels of a snapshot
func Parties(snapshot domain.TransferSnapshot, accounts []*domain.Account) (from, to string) {
	from, to = notApplicable, notApplicable

	switch d := snapshot.Details.(type) {
	case domain.OwnAccountDetails:
		from = accountName(accounts, d.FromAccountID)
		to = accountName(accounts, d.ToAccountID)
	case domain.ExternalBankDetails:
		to = fmt.Sprintf("%s %s", d.BankName, d.AccountNumber)
	case domain.MobileMoneyDetails:
		to = d.Mobile
	case domain.BillPaymentDetails:
		to = fmt.Sprintf("%s (%s)", d.Biller, d.BillNumber)
	case domain.LoanRepaymentDetails:
		to = d.LoanAccount
	case domain.SavingsGoalDetails:
		to = d.SavingsGoal
	}
	return from, to
}

// StatusMessage returns the banner shown for an outcome state
func StatusMessage(state domain.WorkflowState) string {
	switch state {
	case domain.StateProcessing:
		return "Processing..."
	case domain.StateSettled:
		return "Transfer Successful!"
	case domain.StateFailed:
		return "Transfer Failed."
	default:
		return ""
	}
}

func accountName(accounts []*domain.Account, id string) string {
	if account := domain.FindAccount(accounts, id); account != nil {
		return account.Name
	}
	return notApplicable
}

// Summary returns the confirmation content for the frozen snapshot, or nil
// when no confirmation is pending
func (w *Workflow) Summary(ctx context.Context) (*Summary, error) {
	view := w.View()
	if view.Snapshot == nil {
		return nil, nil
	}

	accounts, err := w.accountsFor(ctx, view.Snapshot.Channel)
	if err != nil {
		return nil, err
	}
	summary := Summarize(*view.Snapshot, accounts)
	return &summary, nil
}
