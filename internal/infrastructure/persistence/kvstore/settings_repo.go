package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/repository"
	"github.com/bnema/fontify/internal/logging"
	"github.com/tidwall/gjson"
)

// ErrUnknownSettingsKey is returned by Update for keys outside entity.SettingsKeys.
var ErrUnknownSettingsKey = errors.New("unknown settings key")

type settingsRepo struct {
	store port.KeyValueStore
}

// NewSettingsRepository creates a settings repository over a key-value store.
func NewSettingsRepository(store port.KeyValueStore) repository.SettingsRepository {
	return &settingsRepo{store: store}
}

func (r *settingsRepo) Load(ctx context.Context) (*entity.Settings, error) {
	raw, err := r.store.Get(ctx, entity.SettingsKeys...)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return decodeSettings(ctx, raw), nil
}

// decodeSettings starts from the defaults and overlays every stored key whose
// value has the expected JSON type. Malformed values are logged and ignored.
func decodeSettings(ctx context.Context, raw map[string][]byte) *entity.Settings {
	log := logging.FromContext(ctx)
	s := entity.DefaultSettings()

	field := func(key string) (gjson.Result, bool) {
		v, ok := raw[key]
		if !ok {
			return gjson.Result{}, false
		}
		if !gjson.ValidBytes(v) {
			log.Warn().Str("key", key).Msg("ignoring malformed settings value")
			return gjson.Result{}, false
		}
		return gjson.ParseBytes(v), true
	}

	if v, ok := field(entity.KeyIsEnabled); ok && (v.Type == gjson.True || v.Type == gjson.False) {
		s.IsEnabled = v.Bool()
	}
	if v, ok := field(entity.KeyFontURL); ok && v.Type == gjson.String {
		s.Font.FontURL = v.String()
	}
	if v, ok := field(entity.KeyFontSizeScale); ok && v.Type == gjson.Number {
		s.Font.FontSizeScale = v.Float()
	}
	if v, ok := field(entity.KeyFontWeight); ok && v.Type == gjson.String {
		s.Font.FontWeight = v.String()
	}
	if v, ok := field(entity.KeyLineHeight); ok && v.Type == gjson.Number {
		s.Font.LineHeight = v.Float()
	}
	if v, ok := field(entity.KeyExcludeURLs); ok && v.IsArray() {
		s.ExcludeURLs = decodeRules(ctx, v)
	}
	if v, ok := field(entity.KeyFontPresets); ok && v.IsArray() {
		s.FontPresets = decodePresets(ctx, v)
	}
	if v, ok := field(entity.KeyActivePreset); ok && v.Type == gjson.String && v.String() != "" {
		name := v.String()
		s.ActivePreset = &name
	}

	s.Font = s.Font.Normalize()
	return s
}

// decodeRules accepts both legacy strings and structured objects, skipping
// entries that are neither.
func decodeRules(ctx context.Context, arr gjson.Result) []entity.ExclusionRule {
	log := logging.FromContext(ctx)

	rules := make([]entity.ExclusionRule, 0)
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

func decodePresets(ctx context.Context, arr gjson.Result) []entity.Preset {
	log := logging.FromContext(ctx)

	presets := make([]entity.Preset, 0)
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

func (r *settingsRepo) SetEnabled(ctx context.Context, enabled bool) error {
	return r.Update(ctx, map[string]any{entity.KeyIsEnabled: enabled})
}

func (r *settingsRepo) SaveFont(ctx context.Context, spec entity.FontSpec) error {
	return r.Update(ctx, map[string]any{
		entity.KeyFontURL:       spec.FontURL,
		entity.KeyFontSizeScale: spec.FontSizeScale,
		entity.KeyFontWeight:    spec.FontWeight,
		entity.KeyLineHeight:    spec.LineHeight,
	})
}

func (r *settingsRepo) SaveExclusions(ctx context.Context, rules []entity.ExclusionRule) error {
	if rules == nil {
		rules = []entity.ExclusionRule{}
	}
	return r.Update(ctx, map[string]any{entity.KeyExcludeURLs: rules})
}

func (r *settingsRepo) SavePresets(ctx context.Context, presets []entity.Preset) error {
	if presets == nil {
		presets = []entity.Preset{}
	}
	return r.Update(ctx, map[string]any{entity.KeyFontPresets: presets})
}

func (r *settingsRepo) SetActivePreset(ctx context.Context, name *string) error {
	var value any
	if name != nil {
		value = *name
	}
	return r.Update(ctx, map[string]any{entity.KeyActivePreset: value})
}

func (r *settingsRepo) Update(ctx context.Context, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}

	entries := make(map[string][]byte, len(values))
	for key, value := range values {
		if !slices.Contains(entity.SettingsKeys, key) {
			return fmt.Errorf("%w: %s", ErrUnknownSettingsKey, key)
		}
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		entries[key] = data
	}

	if err := r.store.Set(ctx, entries); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("keys", len(entries)).Msg("settings updated")
	return nil
}

func (r *settingsRepo) MissingKeys(ctx context.Context) ([]string, error) {
	raw, err := r.store.Get(ctx, entity.SettingsKeys...)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	missing := make([]string, 0)
	for _, key := range entity.SettingsKeys {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing, nil
}
