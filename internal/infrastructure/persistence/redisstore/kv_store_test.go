package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeGlob(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fontify:", "fontify:"},
		{"fontCache_https://a.com/x?y=1", `fontCache_https://a.com/x\?y=1`},
		{"a*b[c]", `a\*b\[c\]`},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeGlob(tt.in))
	}
}

// Runs against a live server when FONTIFY_TEST_REDIS_URL is set.
func TestKVStore_Live(t *testing.T) {
	redisURL := os.Getenv("FONTIFY_TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("FONTIFY_TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	store, err := Connect(ctx, redisURL, "fontify-test:"+uuid.NewString()+":")
	require.NoError(t, err)
	t.Cleanup(func() {
		keys, _ := store.Keys(ctx, "")
		_ = store.Remove(ctx, keys...)
		_ = store.Close()
	})

	require.NoError(t, store.Set(ctx, map[string][]byte{
		entity.KeyIsEnabled:                         []byte("true"),
		entity.FontCacheKey("https://a.com/x.woff"): []byte("{}"),
	}))

	got, err := store.Get(ctx, entity.KeyIsEnabled, entity.KeyFontURL)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{entity.KeyIsEnabled: []byte("true")}, got)

	keys, err := store.Keys(ctx, entity.FontCacheKeyPrefix)
	require.NoError(t, err)
	assert.Equal(t, []string{"fontCache_https://a.com/x.woff"}, keys)

	require.NoError(t, store.Remove(ctx, keys...))
	keys, err = store.Keys(ctx, entity.FontCacheKeyPrefix)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not a url", "")
	require.Error(t, err)
}
