package kvstore_test

import (
	"testing"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/infrastructure/persistence/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontCacheRepository_PutGet(t *testing.T) {
	ctx := testCtx()
	repo := kvstore.NewFontCacheRepository(kvstore.NewMemoryStore())

	got, err := repo.Get(ctx, "https://cdn.example.com/a.woff2")
	require.NoError(t, err)
	assert.Nil(t, got)

	payload := &entity.FontPayload{
		URL:      "https://cdn.example.com/a.woff2",
		DataURL:  "data:font/woff2;base64,AAAA",
		MIMEType: "font/woff2",
		Size:     3,
	}
	require.NoError(t, repo.Put(ctx, payload))

	got, err = repo.Get(ctx, payload.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFontCacheRepository_ClearOnlyTouchesCacheKeys(t *testing.T) {
	ctx := testCtx()
	store := kvstore.NewMemoryStore()
	cache := kvstore.NewFontCacheRepository(store)
	settings := kvstore.NewSettingsRepository(store)

	require.NoError(t, settings.SetEnabled(ctx, true))
	for _, u := range []string{"https://a.com/1.woff", "https://a.com/2.ttf"} {
		require.NoError(t, cache.Put(ctx, &entity.FontPayload{URL: u, DataURL: "data:x"}))
	}

	urls, err := cache.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.com/1.woff", "https://a.com/2.ttf"}, urls)

	n, err := cache.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = cache.Clear(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	keys, err := store.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{entity.KeyIsEnabled}, keys)
}

func TestFontCacheRepository_CorruptEntry(t *testing.T) {
	ctx := testCtx()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, map[string][]byte{entity.FontCacheKey("https://a.com/x.woff"): []byte("{")}))

	_, err := kvstore.NewFontCacheRepository(store).Get(ctx, "https://a.com/x.woff")
	require.Error(t, err)
}
