package service

import (
	"context"
	"encoding/json"
	"fmt"

	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// historyLog is a capped newest-first transaction log stored as one JSON
// array under a single key.
type historyLog struct {
	store ports.StateStore
	key   string
	limit int
	log   zerolog.Logger
}

func newHistoryLog(store ports.StateStore, key string, limit int, log zerolog.Logger) *historyLog {
	if limit <= 0 {
		limit = domain.DefaultHistoryCap
	}
	return &historyLog{store: store, key: key, limit: limit, log: log}
}

// List returns the stored entries. A missing or corrupt log reads as empty.
func (h *historyLog) List(ctx context.Context) ([]domain.TransactionEntry, error) {
	raw, ok, err := h.store.Get(ctx, h.key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", h.key, err)
	}
	if !ok || raw == "" {
		return []domain.TransactionEntry{}, nil
	}
	var entries []domain.TransactionEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		h.log.Warn().Err(err).Str("key", h.key).Msg("discarding corrupt transaction log")
		return []domain.TransactionEntry{}, nil
	}
	return entries, nil
}

// Append puts entry at the head of the log, evicting the oldest entries past the cap.
func (h *historyLog) Append(ctx context.Context, entry domain.TransactionEntry) error {
	entries, err := h.List(ctx)
	if err != nil {
		return err
	}
	entries = domain.PrependCapped(entries, entry, h.limit)
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", h.key, err)
	}
	if err := h.store.Set(ctx, h.key, string(raw)); err != nil {
		return fmt.Errorf("writing %s: %w", h.key, err)
	}
	return nil
}
