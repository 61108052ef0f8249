package domain

import (
	"context"
)

// AccountDirectory lists the accounts a customer can transfer between
type AccountDirectory interface {
	// List retrieves every account, in display order
	List(ctx context.Context) ([]*Account, error)
}

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	AccountDirectory

	// GetByID retrieves an account by its ID
	// Returns an error wrapping ErrAccountNotFound if it does not exist
	GetByID(ctx context.Context, id string) (*Account, error)

	// Create creates a new account
	Create(ctx context.Context, account *Account) error
}

// TransferHistory lists recent transfers for display
type TransferHistory interface {
	// ListRecent retrieves the most recent transfers, newest first
	ListRecent(ctx context.Context, limit int) ([]*TransferRecord, error)
}

// TransferRecordRepository defines the interface for transfer history persistence operations
type TransferRecordRepository interface {
	TransferHistory

	// Create appends a new record to the history
	Create(ctx context.Context, record *TransferRecord) error
}

// Submitter hands a confirmed transfer to the processor.
// Any returned error is treated as a failed attempt.
type Submitter interface {
	Submit(ctx context.Context, snapshot TransferSnapshot) (*Receipt, error)
}
