package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind represents the direction of a points movement.
type TransactionKind string

const (
	TransactionKindReward TransactionKind = "reward"
	TransactionKindSpend  TransactionKind = "spend"
)

// DefaultHistoryCap bounds every transaction log.
const DefaultHistoryCap = 50

// TransactionEntry is an immutable activity log record.
type TransactionEntry struct {
	ID          string          `json:"id"`
	Kind        TransactionKind `json:"type"`
	Amount      string          `json:"amount"`
	Timestamp   int64           `json:"timestamp"` // Unix milliseconds
	TxHash      string          `json:"txHash"`
	Description string          `json:"description"`
}

// NewTransactionEntry builds an entry with a time-ordered ID.
func NewTransactionEntry(kind TransactionKind, amount Amount, txHash, description string, now time.Time) TransactionEntry {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return TransactionEntry{
		ID:          id.String(),
		Kind:        kind,
		Amount:      amount.String(),
		Timestamp:   now.UnixMilli(),
		TxHash:      txHash,
		Description: description,
	}
}

// PrependCapped returns log with entry at index 0, dropping the oldest
// entries beyond limit. A non-positive limit falls back to DefaultHistoryCap.
func PrependCapped(log []TransactionEntry, entry TransactionEntry, limit int) []TransactionEntry {
	if limit <= 0 {
		limit = DefaultHistoryCap
	}
	out := make([]TransactionEntry, 0, min(len(log)+1, limit))
	out = append(out, entry)
	for _, e := range log {
		if len(out) == limit {
			break
		}
		out = append(out, e)
	}
	return out
}

// FilterByKind returns the entries of the given kind. An empty kind matches all.
func FilterByKind(log []TransactionEntry, kind TransactionKind) []TransactionEntry {
	if kind == "" {
		return log
	}
	out := make([]TransactionEntry, 0, len(log))
	for _, e := range log {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// ParseTransactionKind accepts "reward", "spend", or "all"/"" (no filter).
func ParseTransactionKind(s string) (TransactionKind, bool) {
	switch TransactionKind(s) {
	case TransactionKindReward, TransactionKindSpend:
		return TransactionKind(s), true
	case "", "all":
		return "", true
	}
	return "", false
}
