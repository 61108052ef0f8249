package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/transferflow-backend/internal/domain"
)

// transferRecordRepository implements domain.TransferRecordRepository
type transferRecordRepository struct {
	db *DB
}

// NewTransferRecordRepository creates a new transfer record repository
func NewTransferRecordRepository(db *DB) domain.TransferRecordRepository {
	return &transferRecordRepository{db: db}
}

// ListRecent retrieves the newest records first
func (r *transferRecordRepository) ListRecent(ctx context.Context, limit int) ([]*domain.TransferRecord, error) {
	query := `
		SELECT id, from_label, to_label, amount, date, status
		FROM transfer_records
		ORDER BY date DESC, created_at DESC
		LIMIT $1
	`

	// LIMIT NULL returns every row
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := r.db.QueryContext(ctx, query, limitArg)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfer records: %w", err)
	}
	defer rows.Close()

	var records []*domain.TransferRecord
	for rows.Next() {
		var record domain.TransferRecord
		var amountStr string

		if err := rows.Scan(
			&record.ID,
			&record.From,
			&record.To,
			&amountStr,
			&record.Date,
			&record.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transfer record: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount: %w", err)
		}
		record.Amount = amount

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer records: %w", err)
	}

	return records, nil
}

// Create appends a record to the history
func (r *transferRecordRepository) Create(ctx context.Context, record *domain.TransferRecord) error {
	query := `
		INSERT INTO transfer_records (id, from_label, to_label, amount, date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.From,
		record.To,
		record.Amount.String(),
		record.Date,
		string(record.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to create transfer record: %w", err)
	}

	return nil
}
