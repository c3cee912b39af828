package entity

import "time"

// Settings store keys. These are the persisted storage contract shared with
// every host of the override engine.
const (
	KeyIsEnabled     = "isEnabled"
	KeyFontURL       = "fontUrl"
	KeyExcludeURLs   = "excludeUrls"
	KeyFontSizeScale = "fontSizeScale"
	KeyFontWeight    = "fontWeight"
	KeyLineHeight    = "lineHeight"
	KeyFontPresets   = "fontPresets"
	KeyActivePreset  = "activePreset"
)

// SettingsKeys lists every settings key (font cache keys excluded).
var SettingsKeys = []string{
	KeyIsEnabled,
	KeyFontURL,
	KeyExcludeURLs,
	KeyFontSizeScale,
	KeyFontWeight,
	KeyLineHeight,
	KeyFontPresets,
	KeyActivePreset,
}

// Settings is the process-wide persistent state.
type Settings struct {
	IsEnabled    bool
	Font         FontSpec
	ExcludeURLs  []ExclusionRule
	FontPresets  []Preset
	ActivePreset *string
}

// DefaultSettings returns the state of a fresh install.
func DefaultSettings() *Settings {
	return &Settings{
		IsEnabled:   true,
		Font:        DefaultFontSpec(),
		ExcludeURLs: []ExclusionRule{},
		FontPresets: []Preset{},
	}
}

// FindPreset returns the preset with the given name.
func (s *Settings) FindPreset(name string) (Preset, bool) {
	for _, p := range s.FontPresets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// ActivePresetName returns the active preset name or "".
func (s *Settings) ActivePresetName() string {
	if s.ActivePreset == nil {
		return ""
	}
	return *s.ActivePreset
}

// ExportVersion is written into every settings export document.
const ExportVersion = "1.2"

// SettingsExport is the persisted export/import document.
type SettingsExport struct {
	FontURL       string          `json:"fontUrl" jsonschema:"description=Web font or stylesheet URL"`
	ExcludeURLs   []ExclusionRule `json:"excludeUrls" jsonschema:"description=Exclusion rules as plain strings or url and type objects"`
	IsEnabled     bool            `json:"isEnabled"`
	FontPresets   []Preset        `json:"fontPresets"`
	ActivePreset  *string         `json:"activePreset"`
	FontSizeScale float64         `json:"fontSizeScale" jsonschema:"exclusiveMinimum=0"`
	FontWeight    string          `json:"fontWeight"`
	LineHeight    float64         `json:"lineHeight" jsonschema:"exclusiveMinimum=0"`
	ExportDate    time.Time       `json:"exportDate"`
	Version       string          `json:"version"`
}
