package repository

import (
	"context"

	"github.com/bnema/fontify/internal/domain/entity"
)

// SettingsRepository reads and writes the persistent settings keys.
// Writes are last-write-wins per key; there are no transactions.
type SettingsRepository interface {
	// Load returns the full settings, with defaults for missing keys.
	Load(ctx context.Context) (*entity.Settings, error)

	// SetEnabled toggles font replacement globally.
	SetEnabled(ctx context.Context, enabled bool) error

	// SaveFont writes the font URL and adjustments.
	SaveFont(ctx context.Context, spec entity.FontSpec) error

	// SaveExclusions replaces the exclusion list.
	SaveExclusions(ctx context.Context, rules []entity.ExclusionRule) error

	// SavePresets replaces the preset list.
	SavePresets(ctx context.Context, presets []entity.Preset) error

	// SetActivePreset sets the active preset name, or clears it when name is nil.
	SetActivePreset(ctx context.Context, name *string) error

	// Update writes an arbitrary subset of settings keys in one call.
	// Values are JSON-encoded by the implementation.
	Update(ctx context.Context, values map[string]any) error

	// MissingKeys returns the settings keys that have never been written.
	MissingKeys(ctx context.Context) ([]string, error)
}
