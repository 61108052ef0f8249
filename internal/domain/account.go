package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// AccountType represents the kind of customer account
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
)

// Account is read-only reference data offered as a transfer source or target
type Account struct {
	ID           string
	Name         string
	MaskedNumber string // e.g. "•••• 4856"
	Balance      decimal.Decimal
	Type         AccountType
}

// Validate ensures the account adheres to domain rules
func (a *Account) Validate() error {
	if a.ID == "" {
		return errors.New("account id cannot be empty")
	}
	if a.Name == "" {
		return errors.New("account name cannot be empty")
	}
	if a.Balance.IsNegative() {
		return errors.New("account balance cannot be negative")
	}
	switch a.Type {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeInvestment:
	default:
		return errors.New("account type must be checking, savings, or investment")
	}
	return nil
}

// DisplayName returns the label used in account pickers
func (a *Account) DisplayName() string {
	if a.MaskedNumber == "" {
		return a.Name
	}
	return a.Name + " (" + a.MaskedNumber + ")"
}

// FindAccount returns the account with the given id, or nil
func FindAccount(accounts []*Account, id string) *Account {
	for _, a := range accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}
