package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/repository"
	"github.com/bnema/fontify/internal/logging"
)

// MigrateSettingsOutput lists the keys that were filled with defaults.
type MigrateSettingsOutput struct {
	Filled []string
}

// MigrateSettingsUseCase writes defaults for settings keys that were never
// stored. It runs on first start and after upgrades; existing values are never
// overwritten.
type MigrateSettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

// NewMigrateSettingsUseCase creates a new settings migration use case.
func NewMigrateSettingsUseCase(settingsRepo repository.SettingsRepository) *MigrateSettingsUseCase {
	return &MigrateSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute fills missing keys with their defaults.
func (uc *MigrateSettingsUseCase) Execute(ctx context.Context) (*MigrateSettingsOutput, error) {
	log := logging.FromContext(ctx)

	missing, err := uc.settingsRepo.MissingKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check settings keys: %w", err)
	}

	if len(missing) == 0 {
		log.Debug().Msg("no settings migration needed")
		return &MigrateSettingsOutput{Filled: []string{}}, nil
	}

	defaults := defaultSettingValues()
	values := make(map[string]any, len(missing))
	filled := make([]string, 0, len(missing))
	for _, key := range missing {
		v, ok := defaults[key]
		if !ok {
			continue
		}
		values[key] = v
		filled = append(filled, key)
	}

	if err := uc.settingsRepo.Update(ctx, values); err != nil {
		return nil, fmt.Errorf("failed to write default settings: %w", err)
	}

	log.Info().Strs("keys", filled).Msg("settings migration completed")
	return &MigrateSettingsOutput{Filled: filled}, nil
}

func defaultSettingValues() map[string]any {
	d := entity.DefaultSettings()
	return map[string]any{
		entity.KeyIsEnabled:     d.IsEnabled,
		entity.KeyFontURL:       d.Font.FontURL,
		entity.KeyExcludeURLs:   d.ExcludeURLs,
		entity.KeyFontSizeScale: d.Font.FontSizeScale,
		entity.KeyFontWeight:    d.Font.FontWeight,
		entity.KeyLineHeight:    d.Font.LineHeight,
		entity.KeyFontPresets:   d.FontPresets,
		entity.KeyActivePreset:  nil,
	}
}
