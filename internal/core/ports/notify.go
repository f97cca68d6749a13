package ports

import (
	"context"

	"campus-ledger/internal/core/domain"
)

// Notifier receives human-readable status messages. Implementations must not
// fail the operation that emitted them.
type Notifier interface {
	Notify(ctx context.Context, severity domain.Severity, message string)
}
