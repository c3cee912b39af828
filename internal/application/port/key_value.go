package port

import "context"

// KeyValueStore is the process-wide persistent store shared by settings and
// the font cache. Every call is atomic on its own; there are no transactions
// and concurrent writers follow last-write-wins. Values are opaque bytes
// (JSON in practice).
type KeyValueStore interface {
	// Get returns the values of the keys that exist. Missing keys are absent from the map.
	Get(ctx context.Context, keys ...string) (map[string][]byte, error)

	// Set writes all entries in one batch.
	Set(ctx context.Context, entries map[string][]byte) error

	// Remove deletes the given keys in one batch. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error

	// Keys returns every key starting with prefix ("" lists all keys).
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases the underlying connection.
	Close() error
}
