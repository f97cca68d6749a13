package domain

// ConfirmationState is the transient settlement state of a submitted call.
type ConfirmationState string

const (
	ConfirmationSubmitted ConfirmationState = "submitted"
	ConfirmationConfirmed ConfirmationState = "confirmed"
	ConfirmationTimedOut  ConfirmationState = "timed-out"
	ConfirmationRejected  ConfirmationState = "rejected"
)

// IsTerminal returns true once the network has settled the transaction.
func (s ConfirmationState) IsTerminal() bool {
	return s == ConfirmationConfirmed || s == ConfirmationRejected
}

// Severity tags a user-facing status message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)
