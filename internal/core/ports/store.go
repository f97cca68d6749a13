package ports

import "context"

// StateStore is the key-value store behind persisted client state.
// Keys are flat strings; values are opaque strings (decimal, "true", JSON).
type StateStore interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete is a no-op for a missing key.
	Delete(ctx context.Context, key string) error
}
