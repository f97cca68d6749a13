package memory

import (
	"context"
	"sync"
)

// StateStore is a volatile ports.StateStore. It is safe for concurrent use.
type StateStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewStateStore() *StateStore {
	return &StateStore{data: make(map[string]string)}
}

func (s *StateStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *StateStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return nil
}

func (s *StateStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Ping always succeeds.
func (s *StateStore) Ping(context.Context) error { return nil }

func (s *StateStore) Name() string { return "memory" }
