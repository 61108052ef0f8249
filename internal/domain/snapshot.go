package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChannelDetails carries only the inputs that belong to one channel
type ChannelDetails interface {
	Channel() Channel
}

type OwnAccountDetails struct {
	FromAccountID string
	ToAccountID   string
}

type ExternalBankDetails struct {
	BankName      string
	AccountNumber string
}

type MobileMoneyDetails struct {
	Mobile string
}

type BillPaymentDetails struct {
	Biller     string
	BillNumber string
}

type LoanRepaymentDetails struct {
	LoanAccount string
}

type SavingsGoalDetails struct {
	SavingsGoal string
}

type ScheduledDetails struct {
	Date time.Time
}

func (OwnAccountDetails) Channel() Channel    { return ChannelOwnAccount }
func (ExternalBankDetails) Channel() Channel  { return ChannelExternalBank }
func (MobileMoneyDetails) Channel() Channel   { return ChannelMobileMoney }
func (BillPaymentDetails) Channel() Channel   { return ChannelBillPayment }
func (LoanRepaymentDetails) Channel() Channel { return ChannelLoanRepayment }
func (SavingsGoalDetails) Channel() Channel   { return ChannelSavingsGoal }
func (ScheduledDetails) Channel() Channel     { return ChannelScheduled }

// TransferSnapshot is the immutable copy of a valid draft taken at confirmation time.
// It is both the confirmation summary source and the submission payload.
type TransferSnapshot struct {
	Channel   Channel
	Amount    decimal.Decimal
	Memo      string
	Details   ChannelDetails
	CreatedAt time.Time
}

// NewTransferSnapshot validates the draft and freezes the fields relevant to the channel
func NewTransferSnapshot(channel Channel, draft TransferDraft, accounts []*Account, now time.Time) (*TransferSnapshot, error) {
	if err := ValidateDraft(channel, draft, accounts, now); err != nil {
		return nil, err
	}

	amount, err := ParseAmount(draft.Amount)
	if err != nil {
		return nil, err
	}

	snapshot := &TransferSnapshot{
		Channel:   channel,
		Amount:    amount,
		Memo:      draft.Description,
		CreatedAt: now,
	}

	switch channel {
	case ChannelOwnAccount:
		snapshot.Details = OwnAccountDetails{FromAccountID: draft.FromAccount, ToAccountID: draft.ToAccount}
	case ChannelExternalBank:
		snapshot.Details = ExternalBankDetails{BankName: draft.BankName, AccountNumber: draft.AccountNumber}
	case ChannelMobileMoney:
		snapshot.Details = MobileMoneyDetails{Mobile: draft.Mobile}
	case ChannelBillPayment:
		snapshot.Details = BillPaymentDetails{Biller: draft.Biller, BillNumber: draft.BillNumber}
	case ChannelLoanRepayment:
		snapshot.Details = LoanRepaymentDetails{LoanAccount: draft.LoanAccount}
	case ChannelSavingsGoal:
		snapshot.Details = SavingsGoalDetails{SavingsGoal: draft.SavingsGoal}
	case ChannelScheduled:
		date, err := ParseScheduleDate(draft.Date, now)
		if err != nil {
			return nil, err
		}
		snapshot.Details = ScheduledDetails{Date: date}
		// The schedule form has no reason input
		snapshot.Memo = ""
	}

	return snapshot, nil
}

// IsFutureDated reports whether a scheduled snapshot runs after the day it was confirmed
func (s *TransferSnapshot) IsFutureDated() bool {
	details, ok := s.Details.(ScheduledDetails)
	if !ok {
		return false
	}
	return details.Date.After(startOfDay(s.CreatedAt))
}
