package domain

// WorkflowState represents the lifecycle of one transfer attempt
type WorkflowState string

const (
	StateEditing             WorkflowState = "EDITING"
	StatePendingConfirmation WorkflowState = "PENDING_CONFIRMATION"
	StateProcessing          WorkflowState = "PROCESSING"
	StateSettled             WorkflowState = "SETTLED"
	StateFailed              WorkflowState = "FAILED"
)

// IsTerminal reports whether the attempt has an outcome and waits for a reset
func (s WorkflowState) IsTerminal() bool {
	return s == StateSettled || s == StateFailed
}
