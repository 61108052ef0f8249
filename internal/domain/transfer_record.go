package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferStatus represents the status shown in the recent transfers list
type TransferStatus string

const (
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusPending   TransferStatus = "pending"
)

// TransferRecord is one entry of the recent transfers history
type TransferRecord struct {
	ID     uuid.UUID
	From   string
	To     string
	Amount decimal.Decimal
	Date   time.Time
	Status TransferStatus
}

// Validate ensures the record adheres to domain rules
func (r *TransferRecord) Validate() error {
	if r.From == "" || r.To == "" {
		return errors.New("transfer record must have from and to labels")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("transfer record amount must be positive")
	}
	if r.Status != TransferStatusCompleted && r.Status != TransferStatusPending {
		return errors.New("transfer record status must be completed or pending")
	}
	return nil
}

// Receipt is returned by the submission collaborator once a transfer is accepted
type Receipt struct {
	ID        uuid.UUID
	Reference string
	SettledAt time.Time
}
