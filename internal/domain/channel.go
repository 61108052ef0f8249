package domain

import "fmt"

// Channel represents the transfer mode selected on the transfer form
type Channel string

const (
	ChannelOwnAccount    Channel = "own"
	ChannelExternalBank  Channel = "other"
	ChannelMobileMoney   Channel = "mobile"
	ChannelBillPayment   Channel = "bills"
	ChannelLoanRepayment Channel = "loan"
	ChannelSavingsGoal   Channel = "goals"
	ChannelScheduled     Channel = "schedule"
)

// Channels returns every channel in tab order
func Channels() []Channel {
	return []Channel{
		ChannelOwnAccount,
		ChannelExternalBank,
		ChannelMobileMoney,
		ChannelBillPayment,
		ChannelLoanRepayment,
		ChannelSavingsGoal,
		ChannelScheduled,
	}
}

// ParseChannel converts a wire name into a Channel
func ParseChannel(s string) (Channel, error) {
	for _, c := range Channels() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChannel, s)
}

// Label returns the human readable tab label
func (c Channel) Label() string {
	switch c {
	case ChannelOwnAccount:
		return "To My Own Accounts"
	case ChannelExternalBank:
		return "To Other Banks"
	case ChannelMobileMoney:
		return "To Mobile Money"
	case ChannelBillPayment:
		return "Pay Bills"
	case ChannelLoanRepayment:
		return "Repay Loan"
	case ChannelSavingsGoal:
		return "Fund Savings Goal"
	case ChannelScheduled:
		return "Schedule Transfer"
	default:
		return string(c)
	}
}

// RequiredFields returns the channel specific fields that must be filled in,
// in display order. Amount is required for every channel and is not listed.
func (c Channel) RequiredFields() []Field {
	switch c {
	case ChannelOwnAccount:
		return []Field{FieldFromAccount, FieldToAccount}
	case ChannelExternalBank:
		return []Field{FieldBankName, FieldAccountNumber}
	case ChannelMobileMoney:
		return []Field{FieldMobile}
	case ChannelBillPayment:
		return []Field{FieldBiller, FieldBillNumber}
	case ChannelLoanRepayment:
		return []Field{FieldLoanAccount}
	case ChannelSavingsGoal:
		return []Field{FieldSavingsGoal}
	case ChannelScheduled:
		return []Field{FieldDate}
	default:
		return nil
	}
}

// Fields returns every field displayed for the channel, in display order
func (c Channel) Fields() []Field {
	fields := append(c.RequiredFields(), FieldAmount)
	// The schedule form has no reason input
	if c != ChannelScheduled {
		fields = append(fields, FieldDescription)
	}
	return fields
}
