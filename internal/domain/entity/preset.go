package entity

import (
	"slices"
	"strings"
	"time"
)

// Preset is a named snapshot of a font URL, exclusion list and adjustments.
// Adjustments are optional: presets saved before they existed leave the
// live values untouched when applied.
type Preset struct {
	Name          string          `json:"name"`
	FontURL       string          `json:"fontUrl"`
	ExcludeURLs   []ExclusionRule `json:"excludeUrls"`
	FontSizeScale *float64        `json:"fontSizeScale,omitempty"`
	FontWeight    *string         `json:"fontWeight,omitempty"`
	LineHeight    *float64        `json:"lineHeight,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// NewPreset snapshots the given font spec and exclusion rules under name.
func NewPreset(name string, spec FontSpec, rules []ExclusionRule) Preset {
	spec = spec.Normalize()
	return Preset{
		Name:          strings.TrimSpace(name),
		FontURL:       spec.FontURL,
		ExcludeURLs:   slices.Clone(rules),
		FontSizeScale: &spec.FontSizeScale,
		FontWeight:    &spec.FontWeight,
		LineHeight:    &spec.LineHeight,
		CreatedAt:     time.Now().UTC(),
	}
}

// ApplyTo overlays the preset on a live font spec.
func (p Preset) ApplyTo(spec FontSpec) FontSpec {
	spec.FontURL = p.FontURL
	if p.FontSizeScale != nil {
		spec.FontSizeScale = *p.FontSizeScale
	}
	if p.FontWeight != nil {
		spec.FontWeight = *p.FontWeight
	}
	if p.LineHeight != nil {
		spec.LineHeight = *p.LineHeight
	}
	return spec.Normalize()
}

// ReloadSignal asks every open page not matching ExcludeURLs to reload so the
// engine re-runs with fresh settings.
type ReloadSignal struct {
	FontURL       string          `json:"fontUrl"`
	ExcludeURLs   []ExclusionRule `json:"excludeUrls"`
	FontSizeScale *float64        `json:"fontSizeScale,omitempty"`
	FontWeight    *string         `json:"fontWeight,omitempty"`
	LineHeight    *float64        `json:"lineHeight,omitempty"`
}

// ReloadSignal builds the broadcast payload for this preset.
func (p Preset) ReloadSignal() ReloadSignal {
	return ReloadSignal{
		FontURL:       p.FontURL,
		ExcludeURLs:   slices.Clone(p.ExcludeURLs),
		FontSizeScale: p.FontSizeScale,
		FontWeight:    p.FontWeight,
		LineHeight:    p.LineHeight,
	}
}
