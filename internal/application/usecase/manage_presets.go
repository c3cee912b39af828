package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/repository"
	"github.com/bnema/fontify/internal/logging"
)

var (
	// ErrPresetNotFound is returned when no preset has the requested name.
	ErrPresetNotFound = errors.New("preset not found")
	// ErrEmptyPresetName is returned when saving a preset without a name.
	ErrEmptyPresetName = errors.New("preset name cannot be empty")
)

// SavePresetInput describes a preset to save.
// Empty or zero fields are taken from the current settings.
type SavePresetInput struct {
	Name          string
	FontURL       string
	FontSizeScale float64
	FontWeight    string
	LineHeight    float64
}

// SavePresetOutput contains the saved preset.
type SavePresetOutput struct {
	Preset  entity.Preset
	Created bool
}

// ManagePresetsUseCase handles saving, listing and deleting font presets.
type ManagePresetsUseCase struct {
	settingsRepo repository.SettingsRepository
	now          func() time.Time
}

// NewManagePresetsUseCase creates a new preset management use case.
func NewManagePresetsUseCase(settingsRepo repository.SettingsRepository) *ManagePresetsUseCase {
	return &ManagePresetsUseCase{
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// List returns the presets and the active preset name ("" when none).
func (uc *ManagePresetsUseCase) List(ctx context.Context) ([]entity.Preset, string, error) {
	settings, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load presets: %w", err)
	}
	return settings.FontPresets, settings.ActivePresetName(), nil
}

// Get returns the named preset.
func (uc *ManagePresetsUseCase) Get(ctx context.Context, name string) (entity.Preset, error) {
	settings, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		return entity.Preset{}, fmt.Errorf("failed to load presets: %w", err)
	}
	preset, ok := settings.FindPreset(name)
	if !ok {
		return entity.Preset{}, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return preset, nil
}

// Save snapshots the current font settings and exclusion list under a name.
// Saving over an existing name updates that preset in place.
func (uc *ManagePresetsUseCase) Save(ctx context.Context, input SavePresetInput) (*SavePresetOutput, error) {
	log := logging.FromContext(ctx)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyPresetName
	}

	settings, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	spec := settings.Font
	if url := strings.TrimSpace(input.FontURL); url != "" {
		spec.FontURL = url
	}
	if input.FontSizeScale > 0 {
		spec.FontSizeScale = input.FontSizeScale
	}
	if input.FontWeight != "" {
		spec.FontWeight = input.FontWeight
	}
	if input.LineHeight > 0 {
		spec.LineHeight = input.LineHeight
	}
	if spec.FontURL == "" {
		return nil, ErrEmptyFontURL
	}

	preset := entity.NewPreset(name, spec, settings.ExcludeURLs)
	preset.CreatedAt = uc.now().UTC()

	presets := slices.Clone(settings.FontPresets)
	idx := slices.IndexFunc(presets, func(p entity.Preset) bool { return p.Name == name })
	created := idx < 0
	if created {
		presets = append(presets, preset)
	} else {
		presets[idx] = preset
	}

	if err := uc.settingsRepo.SavePresets(ctx, presets); err != nil {
		return nil, fmt.Errorf("failed to save presets: %w", err)
	}

	log.Info().
		Str("preset", name).
		Str("font_url", preset.FontURL).
		Int("exclusions", len(preset.ExcludeURLs)).
		Bool("created", created).
		Msg("preset saved")
	return &SavePresetOutput{Preset: preset, Created: created}, nil
}

// Delete removes the named preset. Deleting the active preset clears activePreset.
func (uc *ManagePresetsUseCase) Delete(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)

	settings, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	idx := slices.IndexFunc(settings.FontPresets, func(p entity.Preset) bool { return p.Name == name })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	presets := slices.Delete(slices.Clone(settings.FontPresets), idx, idx+1)
	if err := uc.settingsRepo.SavePresets(ctx, presets); err != nil {
		return fmt.Errorf("failed to save presets: %w", err)
	}

	if settings.ActivePresetName() == name {
		if err := uc.settingsRepo.SetActivePreset(ctx, nil); err != nil {
			return fmt.Errorf("failed to clear active preset: %w", err)
		}
		log.Debug().Str("preset", name).Msg("active preset cleared")
	}

	log.Info().Str("preset", name).Msg("preset deleted")
	return nil
}
