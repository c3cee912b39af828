package entity

import (
	"math"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// Typography defaults. Absent or invalid values fall back to these, never to zero.
const (
	DefaultFontSizeScale = 1.0
	DefaultFontWeight    = "normal"
	DefaultLineHeight    = 1.5

	// DefaultFontFamily is the family name declared for inlined font files.
	DefaultFontFamily = "FontifyCustomFont"
	// FontCacheKeyPrefix namespaces font cache entries in the key-value store.
	FontCacheKeyPrefix = "fontCache_"
)

var directFontExtensions = map[string]string{
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
}

var keywordWeights = map[string]bool{
	"normal":  true,
	"bold":    true,
	"lighter": true,
	"bolder":  true,
}

// FontSpec is the live typography override.
type FontSpec struct {
	FontURL       string
	FontSizeScale float64
	FontWeight    string
	LineHeight    float64
}

// DefaultFontSpec returns a spec with no font and default adjustments.
func DefaultFontSpec() FontSpec {
	return FontSpec{
		FontSizeScale: DefaultFontSizeScale,
		FontWeight:    DefaultFontWeight,
		LineHeight:    DefaultLineHeight,
	}
}

// Normalize replaces invalid adjustments with defaults.
func (f FontSpec) Normalize() FontSpec {
	f.FontURL = strings.TrimSpace(f.FontURL)
	f.FontSizeScale = PositiveOr(f.FontSizeScale, DefaultFontSizeScale)
	f.LineHeight = PositiveOr(f.LineHeight, DefaultLineHeight)
	if !IsValidFontWeight(f.FontWeight) {
		f.FontWeight = DefaultFontWeight
	}
	return f
}

// HasFont reports whether a font URL is configured.
func (f FontSpec) HasFont() bool {
	return strings.TrimSpace(f.FontURL) != ""
}

// PositiveOr returns v when it is a positive finite number, otherwise fallback.
func PositiveOr(v, fallback float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// IsValidFontWeight accepts CSS weight keywords and 100..900 in steps of 100.
func IsValidFontWeight(w string) bool {
	w = strings.ToLower(strings.TrimSpace(w))
	if keywordWeights[w] {
		return true
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return false
	}
	return n >= 100 && n <= 900 && n%100 == 0
}

// FontPayload is an inline-encoded font resource.
type FontPayload struct {
	URL      string `json:"url"`
	DataURL  string `json:"dataUrl"`
	MIMEType string `json:"mimeType"`
	Size     int    `json:"size"`
}

// FontCacheKey returns the key-value store key for a font URL.
func FontCacheKey(fontURL string) string {
	return FontCacheKeyPrefix + fontURL
}

// fontExtension returns the lowercased extension of the URL path,
// or of the raw string when it does not parse.
func fontExtension(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		return strings.ToLower(path.Ext(u.Path))
	}
	return strings.ToLower(path.Ext(rawURL))
}

// IsDirectFontFile reports whether the URL points at a font binary
// (.woff, .woff2, .ttf, .otf) eligible for inline caching.
func IsDirectFontFile(rawURL string) bool {
	_, ok := directFontExtensions[fontExtension(rawURL)]
	return ok
}

// FontMIMEType returns the MIME type implied by the URL extension.
func FontMIMEType(rawURL string) string {
	if mime, ok := directFontExtensions[fontExtension(rawURL)]; ok {
		return mime
	}
	return "application/octet-stream"
}

// IsGoogleFontsURL reports whether the URL is served by Google Fonts.
func IsGoogleFontsURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return strings.Contains(rawURL, "fonts.googleapis.com") || strings.Contains(rawURL, "fonts.gstatic.com")
	}
	host := strings.ToLower(u.Hostname())
	return host == "fonts.googleapis.com" || host == "fonts.gstatic.com"
}

// IsStylesheetURL reports whether the URL points at a .css file.
func IsStylesheetURL(rawURL string) bool {
	return fontExtension(rawURL) == ".css"
}

// googleFamily extracts the first family from a Google Fonts css/css2 URL.
func googleFamily(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	family := u.Query().Get("family")
	if family == "" {
		return ""
	}
	// css2 uses "Name:wght@400", css uses "Name:400|Other"
	if i := strings.IndexAny(family, ":|"); i >= 0 {
		family = family[:i]
	}
	return strings.TrimSpace(family)
}

// FontFamilyFor returns the CSS family the override rules should reference.
// Google Fonts references declare their own family name; everything else
// uses DefaultFontFamily.
func FontFamilyFor(rawURL string) string {
	if IsDirectFontFile(rawURL) {
		return DefaultFontFamily
	}
	if family := googleFamily(rawURL); family != "" {
		return family
	}
	return DefaultFontFamily
}

// FontDisplayName returns a human-readable name for a font URL.
func FontDisplayName(rawURL string) string {
	if rawURL == "" {
		return "not set"
	}
	if family := googleFamily(rawURL); family != "" {
		return family
	}
	if IsDirectFontFile(rawURL) {
		base := path.Base(rawURL)
		if u, err := url.Parse(rawURL); err == nil {
			base = path.Base(u.Path)
		}
		base = strings.TrimSuffix(base, path.Ext(base))
		return strings.NewReplacer("-", " ", "_", " ").Replace(base)
	}
	if u, err := url.Parse(rawURL); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return "custom font"
}
