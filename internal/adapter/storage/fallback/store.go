package fallback

import (
	"context"
	"errors"
	"sync/atomic"

	"campus-ledger/internal/adapter/storage/memory"
	"campus-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// Store serves state from a durable primary store until the first primary
// failure, then from volatile memory for the rest of the process. Every value
// read from or written to the primary is mirrored into memory so degraded
// reads still see the latest known state.
type Store struct {
	primary  ports.StateStore
	memory   *memory.StateStore
	degraded atomic.Bool
	log      zerolog.Logger
}

var _ ports.StateStore = (*Store)(nil)

func NewStore(primary ports.StateStore, log zerolog.Logger) *Store {
	return &Store{
		primary: primary,
		memory:  memory.NewStateStore(),
		log:     log,
	}
}

// Degraded reports whether the primary store has been abandoned.
func (s *Store) Degraded() bool {
	return s.degraded.Load()
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if !s.degraded.Load() {
		value, ok, err := s.primary.Get(ctx, key)
		if err == nil {
			s.mirror(ctx, key, value, ok)
			return value, ok, nil
		}
		if shouldSkipFallback(err) {
			return "", false, err
		}
		s.degrade(err, "get", key)
	}
	return s.memory.Get(ctx, key)
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	_ = s.memory.Set(ctx, key, value)
	if s.degraded.Load() {
		return nil
	}
	if err := s.primary.Set(ctx, key, value); err != nil {
		if shouldSkipFallback(err) {
			return err
		}
		s.degrade(err, "set", key)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_ = s.memory.Delete(ctx, key)
	if s.degraded.Load() {
		return nil
	}
	if err := s.primary.Delete(ctx, key); err != nil {
		if shouldSkipFallback(err) {
			return err
		}
		s.degrade(err, "delete", key)
	}
	return nil
}

func (s *Store) mirror(ctx context.Context, key, value string, ok bool) {
	if ok {
		_ = s.memory.Set(ctx, key, value)
		return
	}
	_ = s.memory.Delete(ctx, key)
}

func (s *Store) degrade(err error, op, key string) {
	if s.degraded.CompareAndSwap(false, true) {
		s.log.Warn().Err(err).
			Str("op", op).
			Str("key", key).
			Msg("state store unavailable, falling back to in-memory state for this process")
	}
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
