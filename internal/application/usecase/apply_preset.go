package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/repository"
	"github.com/bnema/fontify/internal/logging"
)

// ApplyPresetOutput contains the applied preset and the reload outcome.
type ApplyPresetOutput struct {
	Preset    entity.Preset
	Broadcast *BroadcastResult
}

// ApplyPresetUseCase makes a preset the live configuration and reloads open pages.
type ApplyPresetUseCase struct {
	settingsRepo repository.SettingsRepository
	broadcaster  *BroadcastReloadUseCase
}

// NewApplyPresetUseCase creates a new preset application use case.
// broadcaster may be nil when no pages are hosted.
func NewApplyPresetUseCase(settingsRepo repository.SettingsRepository, broadcaster *BroadcastReloadUseCase) *ApplyPresetUseCase {
	return &ApplyPresetUseCase{
		settingsRepo: settingsRepo,
		broadcaster:  broadcaster,
	}
}

// Execute writes the preset's font URL, exclusions and any adjustments it
// carries, marks it active, enables replacement, then broadcasts a reload to
// pages not excluded by the preset's own rules. A failed broadcast is logged
// and does not fail the apply.
func (uc *ApplyPresetUseCase) Execute(ctx context.Context, name string) (*ApplyPresetOutput, error) {
	log := logging.FromContext(ctx)

	settings, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	preset, ok := settings.FindPreset(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	excludeURLs := preset.ExcludeURLs
	if excludeURLs == nil {
		excludeURLs = []entity.ExclusionRule{}
	}

	values := map[string]any{
		entity.KeyFontURL:      preset.FontURL,
		entity.KeyExcludeURLs:  excludeURLs,
		entity.KeyActivePreset: preset.Name,
		entity.KeyIsEnabled:    true,
	}
	if preset.FontSizeScale != nil {
		values[entity.KeyFontSizeScale] = *preset.FontSizeScale
	}
	if preset.FontWeight != nil {
		values[entity.KeyFontWeight] = *preset.FontWeight
	}
	if preset.LineHeight != nil {
		values[entity.KeyLineHeight] = *preset.LineHeight
	}

	if err := uc.settingsRepo.Update(ctx, values); err != nil {
		return nil, fmt.Errorf("failed to apply preset: %w", err)
	}

	log.Info().Str("preset", preset.Name).Str("font_url", preset.FontURL).Msg("preset applied")

	out := &ApplyPresetOutput{Preset: preset}
	if uc.broadcaster == nil {
		return out, nil
	}

	result, err := uc.broadcaster.Execute(ctx, preset.ReloadSignal())
	if err != nil {
		log.Warn().Err(err).Str("preset", preset.Name).Msg("failed to broadcast reload")
		return out, nil
	}
	out.Broadcast = result
	return out, nil
}
