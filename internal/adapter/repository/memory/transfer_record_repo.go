package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/simaogato/transferflow-backend/internal/domain"
)

// TransferRecordRepository implements domain.TransferRecordRepository in process memory
type TransferRecordRepository struct {
	mu      sync.RWMutex
	records []domain.TransferRecord
}

// NewTransferRecordRepository creates a new in-memory TransferRecordRepository
func NewTransferRecordRepository() *TransferRecordRepository {
	return &TransferRecordRepository{}
}

// ListRecent retrieves the newest records first. Records with the same date
// are returned newest insertion first.
func (r *TransferRecordRepository) ListRecent(ctx context.Context, limit int) ([]*domain.TransferRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*domain.TransferRecord, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		record := r.records[i]
		records = append(records, &record)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Create appends a record to the history
func (r *TransferRecordRepository) Create(ctx context.Context, record *domain.TransferRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, *record)
	return nil
}
