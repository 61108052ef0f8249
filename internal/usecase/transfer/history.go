package transfer

import (
	"context"

	"github.com/simaogato/transferflow-backend/internal/domain"
)

const (
	defaultSourceLabel = "Primary Account"
	scheduledLabel     = "Scheduled Transfer"
)

// recordHistory appends a settled transfer to the recent transfers list.
// Future dated scheduled transfers are recorded as pending.
func (w *Workflow) recordHistory(ctx context.Context, snapshot domain.TransferSnapshot, receipt *domain.Receipt) error {
	accounts, err := w.accountsFor(ctx, snapshot.Channel)
	if err != nil {
		return err
	}

	from, to := Parties(snapshot, accounts)
	if from == notApplicable {
		from = defaultSourceLabel
	}
	if to == notApplicable {
		to = scheduledLabel
	}

	status := domain.TransferStatusCompleted
	if snapshot.IsFutureDated() {
		status = domain.TransferStatusPending
	}

	record := &domain.TransferRecord{
		ID:     receipt.ID,
		From:   from,
		To:     to,
		Amount: snapshot.Amount,
		Date:   receipt.SettledAt,
		Status: status,
	}
	if err := record.Validate(); err != nil {
		return err
	}

	return w.History.Create(ctx, record)
}
