package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/transferflow-backend/internal/domain"
)

// Config tunes a Workflow. Zero values fall back to the defaults below.
type Config struct {
	// AutoResetDelay is how long a settled attempt stays visible before the
	// form is cleared. A negative value disables the automatic reset.
	AutoResetDelay time.Duration

	// SubmitTimeout bounds one call to the Submitter. Zero means no bound.
	SubmitTimeout time.Duration

	Logger *slog.Logger
	Now    func() time.Time
}

const DefaultAutoResetDelay = 2 * time.Second

// Event is raised once per state transition
type Event struct {
	SessionID uuid.UUID
	Channel   domain.Channel
	From      domain.WorkflowState
	To        domain.WorkflowState
	At        time.Time
	Receipt   *domain.Receipt // set when To is SETTLED
	Err       error           // set when To is FAILED
}

// View is a consistent copy of everything the presentation layer renders
type View struct {
	SessionID       uuid.UUID
	State           domain.WorkflowState
	Channel         domain.Channel
	Draft           domain.TransferDraft
	Snapshot        *domain.TransferSnapshot
	ValidationError *domain.ValidationError
	SubmissionError *domain.SubmissionError
	Receipt         *domain.Receipt
}

// Workflow drives one transfer attempt at a time from form entry to outcome.
//
// Lifecycle:
//
//	EDITING -> PENDING_CONFIRMATION (RequestConfirmation, draft valid)
//	PENDING_CONFIRMATION -> EDITING (Cancel)
//	PENDING_CONFIRMATION -> PROCESSING (Confirm)
//	PROCESSING -> SETTLED | FAILED (Submitter outcome)
//	SETTLED -> EDITING (automatic after AutoResetDelay, or Reset)
//	FAILED -> EDITING (Reset only)
//
// Operations that are not allowed in the current state return a
// *domain.TransitionError and leave the workflow untouched.
type Workflow struct {
	ID uuid.UUID

	Accounts  domain.AccountDirectory
	Submitter domain.Submitter
	History   domain.TransferRecordRepository // optional

	cfg    Config
	logger *slog.Logger

	mu sync.Mutex

	state          domain.WorkflowState
	channel        domain.Channel
	draft          domain.TransferDraft
	snapshot       *domain.TransferSnapshot
	validationErr  *domain.ValidationError
	submissionErr  *domain.SubmissionError
	receipt        *domain.Receipt
	attempt        uint64
	revision       uint64 // bumped on every draft or channel change
	resetTimer     *time.Timer
	pending        []Event
	listeners      map[int]func(Event)
	nextListenerID int
	closed         bool

	// notifyMu is held by the goroutine delivering queued events
	notifyMu sync.Mutex
}

// NewWorkflow creates a new Workflow in EDITING on the own-account channel
func NewWorkflow(
	accounts domain.AccountDirectory,
	submitter domain.Submitter,
	history domain.TransferRecordRepository,
	cfg Config,
) *Workflow {
	if cfg.AutoResetDelay == 0 {
		cfg.AutoResetDelay = DefaultAutoResetDelay
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.New()
	return &Workflow{
		ID:        id,
		Accounts:  accounts,
		Submitter: submitter,
		History:   history,
		cfg:       cfg,
		logger:    logger.With("session_id", id.String()),
		state:     domain.StateEditing,
		channel:   domain.ChannelOwnAccount,
		draft:     domain.EmptyDraft(),
		listeners: make(map[int]func(Event)),
	}
}

// Subscribe registers a listener for state transitions and returns a function
// that removes it. Events are delivered in transition order, one at a time.
func (w *Workflow) Subscribe(listener func(Event)) func() {
	w.mu.Lock()
	id := w.nextListenerID
	w.nextListenerID++
	w.listeners[id] = listener
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.listeners, id)
		w.mu.Unlock()
	}
}

// SelectChannel switches the transfer mode. Fields entered for other channels
// are kept and ignored until their channel is selected again.
func (w *Workflow) SelectChannel(channel domain.Channel) error {
	if _, err := domain.ParseChannel(string(channel)); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != domain.StateEditing {
		return &domain.TransitionError{Op: "select channel", State: w.state}
	}
	w.channel = channel
	w.revision++
	w.validationErr = nil
	return nil
}

// UpdateField changes one field of the draft
func (w *Workflow) UpdateField(field domain.Field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != domain.StateEditing {
		return &domain.TransitionError{Op: "update field", State: w.state}
	}
	w.revision++
	return w.draft.Set(field, value)
}

// Validate checks the current draft against the selected channel's rules
// without changing any state
func (w *Workflow) Validate(ctx context.Context) error {
	w.mu.Lock()
	channel, draft := w.channel, w.draft
	w.mu.Unlock()

	accounts, err := w.accountsFor(ctx, channel)
	if err != nil {
		return err
	}
	return domain.ValidateDraft(channel, draft, accounts, w.cfg.Now())
}

// RequestConfirmation validates the draft and freezes it for the confirmation step
// Logic:
//  1. Only allowed in EDITING
//  2. Load accounts without holding the lock when the channel references them
//  3. Re-lock; if the draft or channel changed meanwhile, start over
//  4. On a validation failure stay in EDITING and keep the error for display
//  5. Otherwise store the snapshot and move to PENDING_CONFIRMATION
func (w *Workflow) RequestConfirmation(ctx context.Context) (*domain.TransferSnapshot, error) {
	for {
		w.mu.Lock()
		if w.state != domain.StateEditing {
			state := w.state
			w.mu.Unlock()
			return nil, &domain.TransitionError{Op: "request confirmation", State: state}
		}
		channel, revision := w.channel, w.revision
		w.mu.Unlock()

		accounts, err := w.accountsFor(ctx, channel)
		if err != nil {
			return nil, err
		}

		w.mu.Lock()
		if w.state != domain.StateEditing {
			state := w.state
			w.mu.Unlock()
			return nil, &domain.TransitionError{Op: "request confirmation", State: state}
		}
		if w.revision != revision {
			w.mu.Unlock()
			continue
		}

		snapshot, err := domain.NewTransferSnapshot(w.channel, w.draft, accounts, w.cfg.Now())
		if err != nil {
			var validationErr *domain.ValidationError
			if errors.As(err, &validationErr) {
				w.validationErr = validationErr
			}
			w.mu.Unlock()
			return nil, err
		}

		w.validationErr = nil
		w.snapshot = snapshot
		w.transitionLocked(domain.StatePendingConfirmation, nil)
		frozen := *snapshot
		w.mu.Unlock()
		w.deliver()

		return &frozen, nil
	}
}

// Cancel discards the confirmation and returns to EDITING with the draft as it was
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	if w.state != domain.StatePendingConfirmation {
		state := w.state
		w.mu.Unlock()
		return &domain.TransitionError{Op: "cancel", State: state}
	}

	w.snapshot = nil
	w.transitionLocked(domain.StateEditing, nil)
	w.mu.Unlock()
	w.deliver()
	return nil
}

// Confirm hands the frozen snapshot to the Submitter and returns immediately.
// The outcome arrives later as a SETTLED or FAILED transition.
// The submission outlives ctx's cancellation; only SubmitTimeout bounds it.
func (w *Workflow) Confirm(ctx context.Context) error {
	w.mu.Lock()
	if w.state != domain.StatePendingConfirmation || w.closed {
		state := w.state
		w.mu.Unlock()
		return &domain.TransitionError{Op: "confirm", State: state}
	}

	w.attempt++
	attempt := w.attempt
	snapshot := *w.snapshot
	w.submissionErr = nil
	w.receipt = nil
	w.transitionLocked(domain.StateProcessing, nil)
	w.mu.Unlock()
	w.deliver()

	go w.submit(context.WithoutCancel(ctx), attempt, snapshot)
	return nil
}

// Reset clears the draft after an outcome and returns to EDITING.
// The selected channel is kept.
func (w *Workflow) Reset() error {
	w.mu.Lock()
	if !w.state.IsTerminal() {
		state := w.state
		w.mu.Unlock()
		return &domain.TransitionError{Op: "reset", State: state}
	}

	w.resetLocked()
	w.mu.Unlock()
	w.deliver()
	return nil
}

// Close stops the automatic reset timer and rejects further confirmations.
// A submission already in flight still resolves.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	if w.resetTimer != nil {
		w.resetTimer.Stop()
		w.resetTimer = nil
	}
}

// State returns the current lifecycle state
func (w *Workflow) State() domain.WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Channel returns the selected channel
func (w *Workflow) Channel() domain.Channel {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.channel
}

// Draft returns a copy of the live draft
func (w *Workflow) Draft() domain.TransferDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// View returns a consistent copy of the workflow for rendering
func (w *Workflow) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	view := View{
		SessionID:       w.ID,
		State:           w.state,
		Channel:         w.channel,
		Draft:           w.draft,
		ValidationError: w.validationErr,
		SubmissionError: w.submissionErr,
		Receipt:         w.receipt,
	}
	if w.snapshot != nil {
		frozen := *w.snapshot
		view.Snapshot = &frozen
	}
	return view
}

// submit runs the Submitter for one attempt and records the outcome
func (w *Workflow) submit(ctx context.Context, attempt uint64, snapshot domain.TransferSnapshot) {
	receipt, err := w.callSubmitter(ctx, snapshot)
	if err == nil && receipt == nil {
		err = &domain.SubmissionError{Reason: "processor returned no receipt"}
	}

	if err == nil && w.History != nil {
		if recErr := w.recordHistory(ctx, snapshot, receipt); recErr != nil {
			w.logger.Warn("failed to record transfer history", "error", recErr)
		}
	}

	w.mu.Lock()
	if w.attempt != attempt || w.state != domain.StateProcessing {
		w.mu.Unlock()
		return
	}

	if err != nil {
		w.submissionErr = asSubmissionError(err)
		w.logger.Warn("transfer submission failed", "error", err)
		w.transitionLocked(domain.StateFailed, w.submissionErr)
	} else {
		w.receipt = receipt
		w.transitionLocked(domain.StateSettled, nil)
		if w.cfg.AutoResetDelay > 0 && !w.closed {
			w.resetTimer = time.AfterFunc(w.cfg.AutoResetDelay, func() { w.autoReset(attempt) })
		}
	}
	w.mu.Unlock()
	w.deliver()
}

// callSubmitter converts panics and timeouts into errors
func (w *Workflow) callSubmitter(ctx context.Context, snapshot domain.TransferSnapshot) (receipt *domain.Receipt, err error) {
	defer func() {
		if r := recover(); r != nil {
			receipt = nil
			err = &domain.SubmissionError{Reason: fmt.Sprintf("processor panicked: %v", r)}
		}
	}()

	if w.cfg.SubmitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.cfg.SubmitTimeout)
		defer cancel()
	}

	return w.Submitter.Submit(ctx, snapshot)
}

func (w *Workflow) autoReset(attempt uint64) {
	w.mu.Lock()
	if w.attempt != attempt || w.state != domain.StateSettled {
		w.mu.Unlock()
		return
	}
	w.resetLocked()
	w.mu.Unlock()
	w.deliver()
}

// resetLocked must be called with mu held
func (w *Workflow) resetLocked() {
	if w.resetTimer != nil {
		w.resetTimer.Stop()
		w.resetTimer = nil
	}
	w.draft = domain.EmptyDraft()
	w.revision++
	w.snapshot = nil
	w.validationErr = nil
	w.submissionErr = nil
	w.receipt = nil
	w.transitionLocked(domain.StateEditing, nil)
}

// transitionLocked must be called with mu held. It queues the event; call
// deliver after releasing mu.
func (w *Workflow) transitionLocked(to domain.WorkflowState, err error) {
	event := Event{
		SessionID: w.ID,
		Channel:   w.channel,
		From:      w.state,
		To:        to,
		At:        w.cfg.Now(),
		Err:       err,
	}
	if to == domain.StateSettled {
		event.Receipt = w.receipt
	}

	w.logger.Info("transfer state changed", "from", w.state, "to", to, "channel", w.channel)
	w.state = to
	w.pending = append(w.pending, event)
}

// deliver drains queued events to listeners. Only one goroutine delivers at a
// time; a listener that triggers another transition has its event delivered
// by the loop that is already running.
func (w *Workflow) deliver() {
	if !w.notifyMu.TryLock() {
		return
	}

	for {
		w.mu.Lock()
		if len(w.pending) == 0 {
			// Released under mu so no queued event can be missed
			w.notifyMu.Unlock()
			w.mu.Unlock()
			return
		}
		event := w.pending[0]
		w.pending = w.pending[1:]
		listeners := make([]func(Event), 0, len(w.listeners))
		for _, l := range w.listeners {
			listeners = append(listeners, l)
		}
		w.mu.Unlock()

		for _, l := range listeners {
			l(event)
		}
	}
}

func (w *Workflow) accountsFor(ctx context.Context, channel domain.Channel) ([]*domain.Account, error) {
	if channel != domain.ChannelOwnAccount {
		return nil, nil
	}
	accounts, err := w.Accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func asSubmissionError(err error) *domain.SubmissionError {
	var submissionErr *domain.SubmissionError
	if errors.As(err, &submissionErr) {
		return submissionErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.SubmissionError{Reason: "processor timed out", Err: err}
	}
	return &domain.SubmissionError{Reason: "processor rejected the transfer", Err: err}
}
