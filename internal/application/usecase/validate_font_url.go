package usecase

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/logging"
)

// FontURLKind classifies a font URL for validation.
type FontURLKind string

const (
	FontURLGoogleFonts FontURLKind = "google-fonts"
	FontURLFontFile    FontURLKind = "font-file"
	FontURLStylesheet  FontURLKind = "stylesheet"
	FontURLUnsupported FontURLKind = "unsupported"
)

var (
	fontFilePattern   = regexp.MustCompile(`(?i)\.(woff2?|ttf|otf|eot)(\?.*)?$`)
	stylesheetPattern = regexp.MustCompile(`(?i)\.css(\?.*)?$`)
)

// FontURLValidation is the outcome of validating a font URL.
type FontURLValidation struct {
	URL         string      `json:"url"`
	Kind        FontURLKind `json:"kind"`
	Valid       bool        `json:"valid"`
	Reason      string      `json:"reason,omitempty"`
	StatusCode  int         `json:"statusCode,omitempty"`
	ContentType string      `json:"contentType,omitempty"`
}

// ValidateFontURLUseCase checks that a font URL is well formed, supported and reachable.
type ValidateFontURLUseCase struct {
	prober port.URLProber
}

// NewValidateFontURLUseCase creates a new font URL validator.
func NewValidateFontURLUseCase(prober port.URLProber) *ValidateFontURLUseCase {
	return &ValidateFontURLUseCase{prober: prober}
}

// ClassifyFontURL returns the validation kind of rawURL without any network access.
func ClassifyFontURL(rawURL string) FontURLKind {
	switch {
	case entity.IsGoogleFontsURL(rawURL):
		return FontURLGoogleFonts
	case fontFilePattern.MatchString(rawURL):
		return FontURLFontFile
	case stylesheetPattern.MatchString(rawURL):
		return FontURLStylesheet
	default:
		return FontURLUnsupported
	}
}

// Execute validates rawURL with a HEAD request.
// Network failures produce an invalid result, never an error.
func (uc *ValidateFontURLUseCase) Execute(ctx context.Context, rawURL string) *FontURLValidation {
	log := logging.FromContext(ctx)
	rawURL = strings.TrimSpace(rawURL)

	result := &FontURLValidation{URL: rawURL, Kind: ClassifyFontURL(rawURL)}

	if !isAbsoluteURL(rawURL) {
		result.Kind = FontURLUnsupported
		result.Reason = "malformed URL"
		return result
	}
	if result.Kind == FontURLUnsupported {
		result.Reason = "unsupported format: use .woff, .woff2, .ttf, .otf, .css or a Google Fonts URL"
		return result
	}

	probe, err := uc.prober.Probe(ctx, rawURL)
	if err != nil {
		log.Debug().Err(err).Str("font_url", rawURL).Msg("font URL probe failed")
		result.Reason = "URL is not reachable"
		return result
	}
	result.StatusCode = probe.StatusCode
	result.ContentType = probe.ContentType

	switch result.Kind {
	case FontURLGoogleFonts:
		result.Valid = true
	case FontURLFontFile:
		uc.checkContentType(result, probe, func(ct string) bool {
			return strings.Contains(ct, "font") || strings.Contains(ct, "application/octet-stream")
		}, "response does not look like a font file")
	case FontURLStylesheet:
		uc.checkContentType(result, probe, func(ct string) bool {
			return strings.Contains(ct, "text/css")
		}, "response is not a stylesheet")
	}

	log.Debug().
		Str("font_url", rawURL).
		Str("kind", string(result.Kind)).
		Bool("valid", result.Valid).
		Msg("font URL validated")
	return result
}

func (uc *ValidateFontURLUseCase) checkContentType(
	result *FontURLValidation,
	probe *port.ProbeResult,
	accept func(contentType string) bool,
	mismatch string,
) {
	if !probe.OK() {
		result.Reason = fmt.Sprintf("failed to load (HTTP %d)", probe.StatusCode)
		return
	}
	if !accept(strings.ToLower(probe.ContentType)) {
		result.Reason = mismatch
		return
	}
	result.Valid = true
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
