package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fontify/internal/domain/repository"
	"github.com/bnema/fontify/internal/logging"
)

// ClearFontCacheUseCase removes every cached font payload.
type ClearFontCacheUseCase struct {
	cache repository.FontCacheRepository
}

// NewClearFontCacheUseCase creates a new cache clearing use case.
func NewClearFontCacheUseCase(cache repository.FontCacheRepository) *ClearFontCacheUseCase {
	return &ClearFontCacheUseCase{cache: cache}
}

// Execute clears the cache and returns the number of removed entries.
// Settings keys are never touched.
func (uc *ClearFontCacheUseCase) Execute(ctx context.Context) (int, error) {
	log := logging.FromContext(ctx)

	removed, err := uc.cache.Clear(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear font cache: %w", err)
	}

	if removed == 0 {
		log.Debug().Msg("font cache already empty")
	} else {
		log.Info().Int("removed", removed).Msg("font cache cleared")
	}
	return removed, nil
}

// List returns the font URLs currently cached.
func (uc *ClearFontCacheUseCase) List(ctx context.Context) ([]string, error) {
	urls, err := uc.cache.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list font cache: %w", err)
	}
	return urls, nil
}
