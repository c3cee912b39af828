package kvstore_test

import (
	"context"
	"testing"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/infrastructure/persistence/kvstore"
	"github.com/bnema/fontify/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func seed(t *testing.T, store *kvstore.MemoryStore, values map[string]string) {
	t.Helper()

	entries := make(map[string][]byte, len(values))
	for k, v := range values {
		entries[k] = []byte(v)
	}
	require.NoError(t, store.Set(testCtx(), entries))
}

func TestSettingsRepository_LoadDefaults(t *testing.T) {
	repo := kvstore.NewSettingsRepository(kvstore.NewMemoryStore())

	s, err := repo.Load(testCtx())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), s)
}

func TestSettingsRepository_LoadIsLenient(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seed(t, store, map[string]string{
		entity.KeyIsEnabled:     `"yes"`,
		entity.KeyFontURL:       `"https://cdn.example.com/a.woff2"`,
		entity.KeyFontSizeScale: `-2`,
		entity.KeyFontWeight:    `"heavy"`,
		entity.KeyLineHeight:    `{broken`,
		entity.KeyExcludeURLs:   `["https://a.com/", {"url":"https://b.com/docs/","type":"prefix"}, 7, {"type":"exact"}]`,
		entity.KeyFontPresets:   `[{"name":"Work","fontUrl":"https://cdn.example.com/w.woff"}, "junk", {"fontUrl":"x"}]`,
		entity.KeyActivePreset:  `null`,
	})

	repo := kvstore.NewSettingsRepository(store)
	s, err := repo.Load(testCtx())
	require.NoError(t, err)

	assert.True(t, s.IsEnabled)
	assert.Equal(t, "https://cdn.example.com/a.woff2", s.Font.FontURL)
	assert.Equal(t, entity.DefaultFontSizeScale, s.Font.FontSizeScale)
	assert.Equal(t, entity.DefaultFontWeight, s.Font.FontWeight)
	assert.Equal(t, entity.DefaultLineHeight, s.Font.LineHeight)
	assert.Equal(t, []entity.ExclusionRule{
		entity.NewLegacyRule("https://a.com/"),
		{Pattern: "https://b.com/docs/", Kind: entity.ExclusionKindPrefix},
	}, s.ExcludeURLs)
	require.Len(t, s.FontPresets, 1)
	assert.Equal(t, "Work", s.FontPresets[0].Name)
	assert.Equal(t, []entity.ExclusionRule{}, s.FontPresets[0].ExcludeURLs)
	assert.Nil(t, s.ActivePreset)
}

func TestSettingsRepository_RoundTrip(t *testing.T) {
	ctx := testCtx()
	store := kvstore.NewMemoryStore()
	repo := kvstore.NewSettingsRepository(store)

	spec := entity.FontSpec{FontURL: "https://fonts.googleapis.com/css2?family=Inter", FontSizeScale: 1.1, FontWeight: "300", LineHeight: 1.7}
	require.NoError(t, repo.SaveFont(ctx, spec))
	require.NoError(t, repo.SetEnabled(ctx, false))
	require.NoError(t, repo.SaveExclusions(ctx, []entity.ExclusionRule{
		entity.NewLegacyRule("https://legacy.com/"),
		{Pattern: "https://x.com/", Kind: entity.ExclusionKindDomain},
	}))
	name := "Reading"
	require.NoError(t, repo.SavePresets(ctx, []entity.Preset{{Name: name, FontURL: spec.FontURL}}))
	require.NoError(t, repo.SetActivePreset(ctx, &name))

	s, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, s.IsEnabled)
	assert.Equal(t, spec, s.Font)
	assert.Len(t, s.ExcludeURLs, 2)
	assert.True(t, s.ExcludeURLs[0].IsLegacy())
	assert.Equal(t, "Reading", s.ActivePresetName())

	raw, err := store.Get(ctx, entity.KeyExcludeURLs)
	require.NoError(t, err)
	assert.JSONEq(t, `["https://legacy.com/",{"url":"https://x.com/","type":"domain"}]`, string(raw[entity.KeyExcludeURLs]))

	require.NoError(t, repo.SetActivePreset(ctx, nil))
	s, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, s.ActivePreset)
}

func TestSettingsRepository_UpdateRejectsUnknownKeys(t *testing.T) {
	repo := kvstore.NewSettingsRepository(kvstore.NewMemoryStore())

	err := repo.Update(testCtx(), map[string]any{"fontCache_https://x/a.woff": "nope"})
	require.ErrorIs(t, err, kvstore.ErrUnknownSettingsKey)
}

func TestSettingsRepository_MissingKeys(t *testing.T) {
	ctx := testCtx()
	store := kvstore.NewMemoryStore()
	repo := kvstore.NewSettingsRepository(store)

	missing, err := repo.MissingKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.SettingsKeys, missing)

	require.NoError(t, repo.SetEnabled(ctx, true))
	require.NoError(t, repo.SetActivePreset(ctx, nil))

	missing, err = repo.MissingKeys(ctx)
	require.NoError(t, err)
	assert.NotContains(t, missing, entity.KeyIsEnabled)
	assert.NotContains(t, missing, entity.KeyActivePreset)
	assert.Contains(t, missing, entity.KeyFontPresets)
}
