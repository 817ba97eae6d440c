// Package metadata is a small key-value repository over the local SQLite
// database. It backs the persisted session (bearer token and cached user).
package metadata

import "context"

// Repository stores opaque byte values under string keys.
type Repository interface {
	// Get returns the value for key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes all keys.
	Clear(ctx context.Context) error
}
