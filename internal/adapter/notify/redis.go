package notify

import (
	"context"
	"encoding/json"
	"time"

	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Message is the JSON payload published for each notification.
type Message struct {
	ID        string          `json:"id"`
	Severity  domain.Severity `json:"severity"`
	Message   string          `json:"message"`
	Timestamp int64           `json:"timestamp"`
}

// RedisNotifier publishes notifications to a Redis pub/sub channel so a UI
// process can render them as toasts.
type RedisNotifier struct {
	client  *goredis.Client
	channel string
	log     zerolog.Logger
}

var _ ports.Notifier = (*RedisNotifier)(nil)

func NewRedisNotifier(client *goredis.Client, channel string, log zerolog.Logger) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel, log: log}
}

// Notify publishes the message. Publish failures are logged and dropped.
func (n *RedisNotifier) Notify(ctx context.Context, severity domain.Severity, message string) {
	payload, err := json.Marshal(Message{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		n.log.Error().Err(err).Msg("notify: failed to marshal message")
		return
	}

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.log.Warn().Err(err).Str("channel", n.channel).Msg("notify: publish failed")
	}
}
