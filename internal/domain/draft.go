package domain

import "fmt"

// Field names a single input of the transfer form
type Field string

const (
	FieldFromAccount   Field = "fromAccount"
	FieldToAccount     Field = "toAccount"
	FieldAmount        Field = "amount"
	FieldDescription   Field = "description"
	FieldMobile        Field = "mobile"
	FieldBankName      Field = "bankName"
	FieldAccountNumber Field = "accountNumber"
	FieldBiller        Field = "biller"
	FieldBillNumber    Field = "billNumber"
	FieldLoanAccount   Field = "loanAccount"
	FieldSavingsGoal   Field = "savingsGoal"
	FieldSchedule      Field = "schedule"
	FieldDate          Field = "date"
)

// ScheduleMode tells whether a transfer runs immediately or at a later date
type ScheduleMode string

const (
	ScheduleNow   ScheduleMode = "now"
	ScheduleLater ScheduleMode = "later"
)

// DateLayout is the calendar date format accepted by the date field
const DateLayout = "2006-01-02"

// TransferDraft holds the union of every channel's form inputs.
// Values are kept as entered; parsing happens during validation.
type TransferDraft struct {
	FromAccount   string
	ToAccount     string
	Amount        string
	Description   string
	Mobile        string
	BankName      string
	AccountNumber string
	Biller        string
	BillNumber    string
	LoanAccount   string
	SavingsGoal   string
	Schedule      ScheduleMode
	Date          string
}

// EmptyDraft returns the form defaults
func EmptyDraft() TransferDraft {
	return TransferDraft{Schedule: ScheduleNow}
}

// Set updates one field of the draft
func (d *TransferDraft) Set(field Field, value string) error {
	switch field {
	case FieldFromAccount:
		d.FromAccount = value
	case FieldToAccount:
		d.ToAccount = value
	case FieldAmount:
		d.Amount = value
	case FieldDescription:
		d.Description = value
	case FieldMobile:
		d.Mobile = value
	case FieldBankName:
		d.BankName = value
	case FieldAccountNumber:
		d.AccountNumber = value
	case FieldBiller:
		d.Biller = value
	case FieldBillNumber:
		d.BillNumber = value
	case FieldLoanAccount:
		d.LoanAccount = value
	case FieldSavingsGoal:
		d.SavingsGoal = value
	case FieldSchedule:
		mode := ScheduleMode(value)
		if mode != ScheduleNow && mode != ScheduleLater {
			return &ValidationError{Field: FieldSchedule, Reason: "must be now or later"}
		}
		d.Schedule = mode
	case FieldDate:
		d.Date = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Get returns the current value of a field
func (d TransferDraft) Get(field Field) (string, error) {
	switch field {
	case FieldFromAccount:
		return d.FromAccount, nil
	case FieldToAccount:
		return d.ToAccount, nil
	case FieldAmount:
		return d.Amount, nil
	case FieldDescription:
		return d.Description, nil
	case FieldMobile:
		return d.Mobile, nil
	case FieldBankName:
		return d.BankName, nil
	case FieldAccountNumber:
		return d.AccountNumber, nil
	case FieldBiller:
		return d.Biller, nil
	case FieldBillNumber:
		return d.BillNumber, nil
	case FieldLoanAccount:
		return d.LoanAccount, nil
	case FieldSavingsGoal:
		return d.SavingsGoal, nil
	case FieldSchedule:
		return string(d.Schedule), nil
	case FieldDate:
		return d.Date, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// Values returns the draft as a field to value map
func (d TransferDraft) Values() map[Field]string {
	return map[Field]string{
		FieldFromAccount:   d.FromAccount,
		FieldToAccount:     d.ToAccount,
		FieldAmount:        d.Amount,
		FieldDescription:   d.Description,
		FieldMobile:        d.Mobile,
		FieldBankName:      d.BankName,
		FieldAccountNumber: d.AccountNumber,
		FieldBiller:        d.Biller,
		FieldBillNumber:    d.BillNumber,
		FieldLoanAccount:   d.LoanAccount,
		FieldSavingsGoal:   d.SavingsGoal,
		FieldSchedule:      string(d.Schedule),
		FieldDate:          d.Date,
	}
}
