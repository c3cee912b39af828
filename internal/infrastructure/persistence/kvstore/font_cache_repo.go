package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/repository"
	"github.com/bnema/fontify/internal/logging"
)

type fontCacheRepo struct {
	store port.KeyValueStore
}

// NewFontCacheRepository creates a font cache stored next to the settings,
// under the fontCache_ key namespace.
func NewFontCacheRepository(store port.KeyValueStore) repository.FontCacheRepository {
	return &fontCacheRepo{store: store}
}

func (r *fontCacheRepo) Get(ctx context.Context, fontURL string) (*entity.FontPayload, error) {
	key := entity.FontCacheKey(fontURL)

	raw, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read font cache: %w", err)
	}
	data, ok := raw[key]
	if !ok {
		return nil, nil
	}

	var payload entity.FontPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode cached font %s: %w", fontURL, err)
	}
	if payload.DataURL == "" {
		return nil, nil
	}
	if payload.URL == "" {
		payload.URL = fontURL
	}
	return &payload, nil
}

func (r *fontCacheRepo) Put(ctx context.Context, payload *entity.FontPayload) error {
	if payload == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode font payload: %w", err)
	}
	if err := r.store.Set(ctx, map[string][]byte{entity.FontCacheKey(payload.URL): data}); err != nil {
		return fmt.Errorf("failed to write font cache: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("font_url", payload.URL).
		Int("size", payload.Size).
		Msg("font cached")
	return nil
}

func (r *fontCacheRepo) Clear(ctx context.Context) (int, error) {
	keys, err := r.store.Keys(ctx, entity.FontCacheKeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("failed to list font cache: %w", err)
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := r.store.Remove(ctx, keys...); err != nil {
		return 0, fmt.Errorf("failed to clear font cache: %w", err)
	}
	return len(keys), nil
}

func (r *fontCacheRepo) List(ctx context.Context) ([]string, error) {
	keys, err := r.store.Keys(ctx, entity.FontCacheKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list font cache: %w", err)
	}

	urls := make([]string, len(keys))
	for i, k := range keys {
		urls[i] = strings.TrimPrefix(k, entity.FontCacheKeyPrefix)
	}
	return urls, nil
}
