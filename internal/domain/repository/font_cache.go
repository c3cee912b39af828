package repository

import (
	"context"

	"github.com/bnema/fontify/internal/domain/entity"
)

// FontCacheRepository persists inline font payloads keyed by font URL.
// Entries never expire; they are removed only by Clear.
type FontCacheRepository interface {
	// Get returns the cached payload, or nil when absent.
	Get(ctx context.Context, fontURL string) (*entity.FontPayload, error)

	// Put stores a payload under its URL.
	Put(ctx context.Context, payload *entity.FontPayload) error

	// Clear removes every cache entry in one batch and returns how many were removed.
	Clear(ctx context.Context) (int, error)

	// List returns the URLs currently cached.
	List(ctx context.Context) ([]string, error)
}
