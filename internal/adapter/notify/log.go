package notify

import (
	"context"

	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// LogNotifier writes user-facing status messages to the structured log.
type LogNotifier struct {
	log zerolog.Logger
}

var _ ports.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, severity domain.Severity, message string) {
	var ev *zerolog.Event
	switch severity {
	case domain.SeverityError:
		ev = n.log.Error()
	case domain.SeverityWarning:
		ev = n.log.Warn()
	default:
		ev = n.log.Info()
	}
	ev.Str("severity", string(severity)).Msg(message)
}

// Multi fans a message out to every notifier in order.
type Multi []ports.Notifier

func (m Multi) Notify(ctx context.Context, severity domain.Severity, message string) {
	for _, n := range m {
		n.Notify(ctx, severity, message)
	}
}
