package usecase_test

import (
	"testing"

	"github.com/bnema/fontify/internal/application/usecase"
	"github.com/bnema/fontify/internal/domain/entity"
	repomocks "github.com/bnema/fontify/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManageExclusionsUseCase_AddLegacyRule(t *testing.T) {
	ctx := testContext()

	existing := []entity.ExclusionRule{entity.NewLegacyRule("https://a.com/")}
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(settingsWith(func(s *entity.Settings) {
		s.ExcludeURLs = existing
	}), nil)
	repo.EXPECT().SaveExclusions(mock.Anything, []entity.ExclusionRule{
		entity.NewLegacyRule("https://a.com/"),
		entity.NewLegacyRule("https://b.com/docs/"),
	}).Return(nil)

	uc := usecase.NewManageExclusionsUseCase(repo)

	rule, err := uc.Add(ctx, entity.NewLegacyRule(" https://b.com/docs/ "))
	require.NoError(t, err)
	assert.Equal(t, "https://b.com/docs/", rule.Pattern)
	assert.Len(t, existing, 1, "stored slice must not be mutated")
}

func TestManageExclusionsUseCase_AddRejectsDuplicatesAndRelative(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(settingsWith(func(s *entity.Settings) {
		s.ExcludeURLs = []entity.ExclusionRule{entity.NewLegacyRule("https://a.com/")}
	}), nil)

	uc := usecase.NewManageExclusionsUseCase(repo)

	_, err := uc.Add(ctx, entity.NewLegacyRule("https://a.com/"))
	require.ErrorIs(t, err, usecase.ErrExclusionExists)

	_, err = uc.Add(ctx, entity.NewLegacyRule("a.com"))
	require.ErrorIs(t, err, usecase.ErrInvalidExclusionURL)
}

func TestManageExclusionsUseCase_AddCurrentUsesSuggestion(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(settingsWith(nil), nil)
	repo.EXPECT().SaveExclusions(mock.Anything, []entity.ExclusionRule{
		{Pattern: "https://example.com/blog/post", Kind: entity.ExclusionKindExact},
	}).Return(nil)

	uc := usecase.NewManageExclusionsUseCase(repo)

	rule, err := uc.AddCurrent(ctx, "https://example.com/blog/post?ref=1", entity.ExclusionKindLegacy)
	require.NoError(t, err)
	assert.Equal(t, entity.ExclusionKindExact, rule.Kind)
}

func TestManageExclusionsUseCase_AddCurrentDomain(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(settingsWith(nil), nil)
	repo.EXPECT().SaveExclusions(mock.Anything, []entity.ExclusionRule{
		{Pattern: "https://example.com/", Kind: entity.ExclusionKindDomain},
	}).Return(nil)

	uc := usecase.NewManageExclusionsUseCase(repo)

	_, err := uc.AddCurrent(ctx, "https://example.com/blog/post", entity.ExclusionKindDomain)
	require.NoError(t, err)
}

func TestManageExclusionsUseCase_AddCurrentAlreadyExcluded(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(settingsWith(func(s *entity.Settings) {
		s.ExcludeURLs = []entity.ExclusionRule{{Pattern: "https://example.com/", Kind: entity.ExclusionKindDomain}}
	}), nil)

	uc := usecase.NewManageExclusionsUseCase(repo)

	_, err := uc.AddCurrent(ctx, "https://docs.example.com/page", entity.ExclusionKindLegacy)
	require.ErrorIs(t, err, usecase.ErrAlreadyExcluded)
}

func TestManageExclusionsUseCase_Remove(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(settingsWith(func(s *entity.Settings) {
		s.ExcludeURLs = []entity.ExclusionRule{
			entity.NewLegacyRule("https://a.com/"),
			{Pattern: "https://b.com/", Kind: entity.ExclusionKindDomain},
		}
	}), nil)
	repo.EXPECT().SaveExclusions(mock.Anything, []entity.ExclusionRule{
		{Pattern: "https://b.com/", Kind: entity.ExclusionKindDomain},
	}).Return(nil)

	uc := usecase.NewManageExclusionsUseCase(repo)

	require.NoError(t, uc.Remove(ctx, "https://a.com/"))
	require.ErrorIs(t, uc.Remove(ctx, "https://c.com/"), usecase.ErrExclusionNotFound)
}

func TestManageExclusionsUseCase_Check(t *testing.T) {
	ctx := testContext()

	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(mock.Anything).Return(settingsWith(func(s *entity.Settings) {
		s.ExcludeURLs = []entity.ExclusionRule{entity.NewLegacyRule("https://example.com/docs/")}
	}), nil)

	uc := usecase.NewManageExclusionsUseCase(repo)

	hit, err := uc.Check(ctx, "https://example.com/docs/intro")
	require.NoError(t, err)
	assert.True(t, hit.Excluded)
	require.NotNil(t, hit.Rule)
	assert.Equal(t, "https://example.com/docs/", hit.Rule.Pattern)

	miss, err := uc.Check(ctx, "https://example.com/blog/")
	require.NoError(t, err)
	assert.False(t, miss.Excluded)
	assert.Nil(t, miss.Rule)
}
