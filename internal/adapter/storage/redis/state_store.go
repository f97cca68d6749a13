package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// StateStore implements ports.StateStore using plain Redis string keys.
type StateStore struct {
	client *goredis.Client
	prefix string
}

// NewStateStore creates a Redis-backed state store. Every key is namespaced with prefix.
func NewStateStore(client *goredis.Client, prefix string) *StateStore {
	return &StateStore{
		client: client,
		prefix: prefix,
	}
}

// Get returns the value for key. A missing key is not an error.
func (s *StateStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis state get: %w", err)
	}
	return val, true, nil
}

// Set stores value without expiry.
func (s *StateStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis state set: %w", err)
	}
	return nil
}

func (s *StateStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis state delete: %w", err)
	}
	return nil
}

// Ping implements ports.HealthChecker.
func (s *StateStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *StateStore) Name() string { return "redis" }
