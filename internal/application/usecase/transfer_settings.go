package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/repository"
	"github.com/bnema/fontify/internal/logging"
	"github.com/tidwall/gjson"
)

// ErrInvalidImport is returned when an import document is not a JSON object.
var ErrInvalidImport = errors.New("invalid settings import")

// ImportOutput lists the settings keys written by an import.
type ImportOutput struct {
	Keys []string
}

// TransferSettingsUseCase exports and imports settings documents.
type TransferSettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	now          func() time.Time
}

// NewTransferSettingsUseCase creates a new export/import use case.
func NewTransferSettingsUseCase(settingsRepo repository.SettingsRepository) *TransferSettingsUseCase {
	return &TransferSettingsUseCase{
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// Export builds an export document from the current settings.
// Font cache entries are never exported.
func (uc *TransferSettingsUseCase) Export(ctx context.Context) (*entity.SettingsExport, error) {
	settings, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	font := settings.Font.Normalize()
	return &entity.SettingsExport{
		FontURL:       font.FontURL,
		ExcludeURLs:   nonNilRules(settings.ExcludeURLs),
		IsEnabled:     settings.IsEnabled,
		FontPresets:   nonNilPresets(settings.FontPresets),
		ActivePreset:  settings.ActivePreset,
		FontSizeScale: font.FontSizeScale,
		FontWeight:    font.FontWeight,
		LineHeight:    font.LineHeight,
		ExportDate:    uc.now().UTC(),
		Version:       entity.ExportVersion,
	}, nil
}

// Import writes the fields present in data. A field is imported only when
// it is present and non-empty; isEnabled is imported whenever it is a
// boolean. Unknown fields are ignored.
func (uc *TransferSettingsUseCase) Import(ctx context.Context, data []byte) (*ImportOutput, error) {
	log := logging.FromContext(ctx)

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidImport)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidImport)
	}

	values := make(map[string]any)

	if v := doc.Get(entity.KeyFontURL); v.Type == gjson.String && v.String() != "" {
		values[entity.KeyFontURL] = v.String()
	}
	if v := doc.Get(entity.KeyExcludeURLs); v.IsArray() {
		values[entity.KeyExcludeURLs] = decodeRules(ctx, v)
	}
	if v := doc.Get(entity.KeyIsEnabled); v.IsBool() {
		values[entity.KeyIsEnabled] = v.Bool()
	}
	if v := doc.Get(entity.KeyFontPresets); v.IsArray() {
		values[entity.KeyFontPresets] = decodePresets(ctx, v)
	}
	if v := doc.Get(entity.KeyActivePreset); v.Type == gjson.String && v.String() != "" {
		values[entity.KeyActivePreset] = v.String()
	}
	if v := doc.Get(entity.KeyFontSizeScale); v.Type == gjson.Number && v.Float() > 0 {
		values[entity.KeyFontSizeScale] = v.Float()
	}
	if v := doc.Get(entity.KeyFontWeight); v.Type == gjson.String && v.String() != "" {
		values[entity.KeyFontWeight] = v.String()
	}
	if v := doc.Get(entity.KeyLineHeight); v.Type == gjson.Number && v.Float() > 0 {
		values[entity.KeyLineHeight] = v.Float()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(values) == 0 {
		log.Info().Msg("import contained no settings")
		return &ImportOutput{Keys: keys}, nil
	}

	if err := uc.settingsRepo.Update(ctx, values); err != nil {
		return nil, fmt.Errorf("failed to import settings: %w", err)
	}

	log.Info().Strs("keys", keys).Msg("settings imported")
	return &ImportOutput{Keys: keys}, nil
}

// decodeRules accepts plain strings and {url,type} objects, skipping anything else.
func decodeRules(ctx context.Context, arr gjson.Result) []entity.ExclusionRule {
	log := logging.FromContext(ctx)
	rules := []entity.ExclusionRule{}
	arr.ForEach(func(_, item gjson.Result) bool {
		var rule entity.ExclusionRule
		if err := json.Unmarshal([]byte(item.Raw), &rule); err != nil || rule.Pattern == "" {
			log.Warn().Str("value", item.Raw).Msg("skipping invalid exclusion rule")
			return true
		}
		rules = append(rules, rule)
		return true
	})
	return rules
}

// decodePresets keeps the named presets that decode, skipping the rest.
func decodePresets(ctx context.Context, arr gjson.Result) []entity.Preset {
	log := logging.FromContext(ctx)
	presets := []entity.Preset{}
	arr.ForEach(func(_, item gjson.Result) bool {
		var p entity.Preset
		if err := json.Unmarshal([]byte(item.Raw), &p); err != nil || p.Name == "" {
			log.Warn().Str("value", item.Raw).Msg("skipping invalid preset")
			return true
		}
		if p.ExcludeURLs == nil {
			p.ExcludeURLs = []entity.ExclusionRule{}
		}
		presets = append(presets, p)
		return true
	})
	return presets
}

func nonNilRules(rules []entity.ExclusionRule) []entity.ExclusionRule {
	if rules == nil {
		return []entity.ExclusionRule{}
	}
	return rules
}

func nonNilPresets(presets []entity.Preset) []entity.Preset {
	if presets == nil {
		return []entity.Preset{}
	}
	return presets
}
