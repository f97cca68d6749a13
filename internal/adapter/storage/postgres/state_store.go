package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// StateStore implements ports.StateStore on the ledger_state table.
type StateStore struct {
	pool Pool
}

// NewStateStore creates a new StateStore.
func NewStateStore(pool Pool) *StateStore {
	return &StateStore{pool: pool}
}

// Get fetches a value by key.
func (s *StateStore) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM ledger_state WHERE key = $1`

	var value string
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get state %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts a value.
func (s *StateStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO ledger_state (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set state %q: %w", key, err)
	}
	return nil
}

// Delete removes a key.
func (s *StateStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM ledger_state WHERE key = $1`

	if _, err := s.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}

// Ping implements ports.HealthChecker by probing the state table.
func (s *StateStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `SELECT 1 FROM ledger_state LIMIT 1`)
	return err
}

func (s *StateStore) Name() string { return "postgresql" }
