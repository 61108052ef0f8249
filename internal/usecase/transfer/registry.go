package transfer

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/transferflow-backend/internal/domain"
)

// Registry keeps one Workflow per session. Workflows share collaborators but
// never share draft or state.
type Registry struct {
	Accounts  domain.AccountDirectory
	Submitter domain.Submitter
	History   domain.TransferRecordRepository

	cfg       Config
	listeners []func(Event)

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Workflow
}

// NewRegistry creates a new Registry instance. Every listener is subscribed to
// each workflow the registry starts.
func NewRegistry(
	accounts domain.AccountDirectory,
	submitter domain.Submitter,
	history domain.TransferRecordRepository,
	cfg Config,
	listeners ...func(Event),
) *Registry {
	return &Registry{
		Accounts:  accounts,
		Submitter: submitter,
		History:   history,
		cfg:       cfg,
		listeners: listeners,
		sessions:  make(map[uuid.UUID]*Workflow),
	}
}

// Start creates a new workflow session
func (r *Registry) Start() *Workflow {
	w := NewWorkflow(r.Accounts, r.Submitter, r.History, r.cfg)
	for _, l := range r.listeners {
		w.Subscribe(l)
	}

	r.mu.Lock()
	r.sessions[w.ID] = w
	r.mu.Unlock()
	return w
}

// Get retrieves a session by its ID
func (r *Registry) Get(id uuid.UUID) (*Workflow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return w, nil
}

// Close removes a session and stops its timers
func (r *Registry) Close(id uuid.UUID) error {
	r.mu.Lock()
	w, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	w.Close()
	return nil
}

// CloseAll closes every session
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[uuid.UUID]*Workflow)
	r.mu.Unlock()

	for _, w := range sessions {
		w.Close()
	}
}

// Len returns the number of open sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
