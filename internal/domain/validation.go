package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ValidateDraft checks the draft against the rules of the selected channel.
// It is a pure function of its arguments and reports the first unmet rule,
// checking channel fields in display order and then the amount.
// Fields that the channel does not display are ignored.
func ValidateDraft(channel Channel, draft TransferDraft, accounts []*Account, now time.Time) error {
	switch channel {
	case ChannelOwnAccount:
		if err := validateOwnAccounts(draft, accounts); err != nil {
			return err
		}
	case ChannelScheduled:
		if _, err := ParseScheduleDate(draft.Date, now); err != nil {
			return err
		}
	case ChannelExternalBank, ChannelMobileMoney, ChannelBillPayment,
		ChannelLoanRepayment, ChannelSavingsGoal:
		for _, field := range channel.RequiredFields() {
			value, _ := draft.Get(field)
			if strings.TrimSpace(value) == "" {
				return &ValidationError{Field: field, Reason: "is required"}
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}

	_, err := ParseAmount(draft.Amount)
	return err
}

// validateOwnAccounts enforces the own-account rules:
// both accounts must be known and a transfer to the same account is rejected
func validateOwnAccounts(draft TransferDraft, accounts []*Account) error {
	if draft.FromAccount == "" {
		return &ValidationError{Field: FieldFromAccount, Reason: "is required"}
	}
	if FindAccount(accounts, draft.FromAccount) == nil {
		return &ValidationError{Field: FieldFromAccount, Reason: "must reference an existing account"}
	}
	if draft.ToAccount == "" {
		return &ValidationError{Field: FieldToAccount, Reason: "is required"}
	}
	if FindAccount(accounts, draft.ToAccount) == nil {
		return &ValidationError{Field: FieldToAccount, Reason: "must reference an existing account"}
	}
	if draft.FromAccount == draft.ToAccount {
		return &ValidationError{Field: FieldToAccount, Reason: "must differ from the source account"}
	}
	return nil
}

// MaxAmount is the exclusive upper bound of a transfer amount. It matches the
// DECIMAL(18, 2) columns of the Postgres store.
var MaxAmount = decimal.New(1, 16)

// amountPattern accepts plain decimal notation only. Exponents such as "1e9"
// are rejected before any arithmetic runs on the value.
var amountPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)

// maxAmountLength bounds the input so parsing stays cheap
const maxAmountLength = 64

// ParseAmount converts the amount input into a positive decimal below
// MaxAmount with at most two fractional digits
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, &ValidationError{Field: FieldAmount, Reason: "is required"}
	}
	if len(raw) > maxAmountLength {
		return decimal.Zero, &ValidationError{Field: FieldAmount, Reason: "is too large"}
	}
	if !amountPattern.MatchString(raw) {
		return decimal.Zero, &ValidationError{Field: FieldAmount, Reason: "must be a number"}
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: FieldAmount, Reason: "must be a number"}
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, &ValidationError{Field: FieldAmount, Reason: "must be greater than zero"}
	}
	if amount.GreaterThanOrEqual(MaxAmount) {
		return decimal.Zero, &ValidationError{Field: FieldAmount, Reason: "is too large"}
	}
	if !amount.Equal(amount.Round(2)) {
		return decimal.Zero, &ValidationError{Field: FieldAmount, Reason: "must have at most two decimal places"}
	}
	return amount, nil
}

// ParseScheduleDate parses the date input in now's location.
// Today is accepted; any earlier calendar day is rejected.
func ParseScheduleDate(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, &ValidationError{Field: FieldDate, Reason: "is required"}
	}

	date, err := time.ParseInLocation(DateLayout, raw, now.Location())
	if err != nil {
		return time.Time{}, &ValidationError{Field: FieldDate, Reason: "must be a date in YYYY-MM-DD format"}
	}
	if date.Before(startOfDay(now)) {
		return time.Time{}, &ValidationError{Field: FieldDate, Reason: "cannot be in the past"}
	}
	return date, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
