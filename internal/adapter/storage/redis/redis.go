package redis

import (
	"context"
	"fmt"
	"strings"

	"campus-ledger/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// defaultKeyPrefix namespaces ledger state when redis.prefix is blank.
const defaultKeyPrefix = "campus:"

// KeyPrefix returns the namespace for ledger state keys. It always ends in
// ':' so "campus" and "campus:" address the same session and history keys.
func KeyPrefix(cfg config.RedisConfig) string {
	p := strings.TrimSpace(cfg.Prefix)
	if p == "" {
		return defaultKeyPrefix
	}
	if !strings.HasSuffix(p, ":") {
		p += ":"
	}
	return p
}

// NewClient creates the Redis client shared by the ledger state store and
// the status notifier, and verifies connectivity.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("key_prefix", KeyPrefix(cfg)).
		Msg("Redis ledger store connected")

	return client, nil
}
