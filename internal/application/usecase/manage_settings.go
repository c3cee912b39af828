package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/repository"
	"github.com/bnema/fontify/internal/logging"
)

var (
	// ErrEmptyFontURL is returned when saving a font without a URL.
	ErrEmptyFontURL = errors.New("font URL cannot be empty")
	// ErrInvalidFontURL is returned when font URL validation fails.
	ErrInvalidFontURL = errors.New("invalid font URL")
)

// SaveFontInput contains the font settings to persist.
type SaveFontInput struct {
	FontURL       string
	FontSizeScale float64
	FontWeight    string
	LineHeight    float64
	// SkipValidation saves without probing the URL.
	SkipValidation bool
}

// ManageSettingsUseCase reads and writes the global font settings.
type ManageSettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	validator    *ValidateFontURLUseCase
}

// NewManageSettingsUseCase creates a new settings use case.
// validator may be nil, in which case font URLs are saved unchecked.
func NewManageSettingsUseCase(settingsRepo repository.SettingsRepository, validator *ValidateFontURLUseCase) *ManageSettingsUseCase {
	return &ManageSettingsUseCase{
		settingsRepo: settingsRepo,
		validator:    validator,
	}
}

// Get returns the current settings.
func (uc *ManageSettingsUseCase) Get(ctx context.Context) (*entity.Settings, error) {
	settings, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// SetEnabled turns font replacement on or off.
func (uc *ManageSettingsUseCase) SetEnabled(ctx context.Context, enabled bool) error {
	log := logging.FromContext(ctx)

	if err := uc.settingsRepo.SetEnabled(ctx, enabled); err != nil {
		return fmt.Errorf("failed to set enabled: %w", err)
	}

	log.Info().Bool("enabled", enabled).Msg("font replacement toggled")
	return nil
}

// Toggle flips the enabled flag and returns the new value.
func (uc *ManageSettingsUseCase) Toggle(ctx context.Context) (bool, error) {
	settings, err := uc.Get(ctx)
	if err != nil {
		return false, err
	}

	enabled := !settings.IsEnabled
	if err := uc.SetEnabled(ctx, enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

// SaveFont validates and persists the font URL and adjustments.
func (uc *ManageSettingsUseCase) SaveFont(ctx context.Context, input SaveFontInput) (entity.FontSpec, error) {
	log := logging.FromContext(ctx)

	spec := entity.FontSpec{
		FontURL:       strings.TrimSpace(input.FontURL),
		FontSizeScale: input.FontSizeScale,
		FontWeight:    input.FontWeight,
		LineHeight:    input.LineHeight,
	}.Normalize()

	if spec.FontURL == "" {
		return entity.FontSpec{}, ErrEmptyFontURL
	}

	if uc.validator != nil && !input.SkipValidation {
		result := uc.validator.Execute(ctx, spec.FontURL)
		if !result.Valid {
			return entity.FontSpec{}, fmt.Errorf("%w: %s", ErrInvalidFontURL, result.Reason)
		}
	}

	if err := uc.settingsRepo.SaveFont(ctx, spec); err != nil {
		return entity.FontSpec{}, fmt.Errorf("failed to save font: %w", err)
	}

	log.Info().
		Str("font_url", spec.FontURL).
		Float64("size_scale", spec.FontSizeScale).
		Str("weight", spec.FontWeight).
		Float64("line_height", spec.LineHeight).
		Msg("font settings saved")
	return spec, nil
}

// ResetAdjustments restores the default size scale, weight and line height.
// The font URL is left untouched.
func (uc *ManageSettingsUseCase) ResetAdjustments(ctx context.Context) error {
	log := logging.FromContext(ctx)

	err := uc.settingsRepo.Update(ctx, map[string]any{
		entity.KeyFontSizeScale: entity.DefaultFontSizeScale,
		entity.KeyFontWeight:    entity.DefaultFontWeight,
		entity.KeyLineHeight:    entity.DefaultLineHeight,
	})
	if err != nil {
		return fmt.Errorf("failed to reset adjustments: %w", err)
	}

	log.Info().Msg("font adjustments reset")
	return nil
}
