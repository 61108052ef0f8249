package submission

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/transferflow-backend/internal/domain"
)

// DefaultDelay matches the processing time shown by the demo transfer page
const DefaultDelay = 2 * time.Second

// Simulator stands in for a transfer processor.
// It waits Delay and then accepts every transfer, unless Failure is set.
type Simulator struct {
	Delay   time.Duration
	Failure error
}

// NewSimulator creates a new Simulator instance
func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{Delay: delay}
}

// Submit implements domain.Submitter
func (s *Simulator) Submit(ctx context.Context, snapshot domain.TransferSnapshot) (*domain.Receipt, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	if s.Failure != nil {
		return nil, s.Failure
	}

	id := uuid.New()
	return &domain.Receipt{
		ID:        id,
		Reference: "TRF-" + strings.ToUpper(id.String()[:8]),
		SettledAt: time.Now(),
	}, nil
}
