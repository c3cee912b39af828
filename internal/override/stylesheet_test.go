package override_test

import (
	"strings"
	"testing"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/override"
	"github.com/stretchr/testify/assert"
)

func TestBuildStylesheet_InlinePayload(t *testing.T) {
	spec := entity.FontSpec{
		FontURL:       directFontURL,
		FontSizeScale: 1.2,
		FontWeight:    "600",
		LineHeight:    1.8,
	}
	payload := &entity.FontPayload{DataURL: "data:font/woff2;base64,QUJD"}

	css := override.BuildStylesheet(spec, payload, entity.DefaultFontFamily)

	assert.True(t, strings.HasPrefix(css, "@font-face {"))
	assert.Contains(t, css, "font-family: 'FontifyCustomFont';")
	assert.Contains(t, css, "src: url('data:font/woff2;base64,QUJD');")
	assert.Contains(t, css, "font-display: swap;")
	assert.Contains(t, css, "font-family: 'FontifyCustomFont', sans-serif !important;")
	assert.Contains(t, css, "font-weight: 600 !important;")
	assert.Contains(t, css, "line-height: 1.8 !important;")
	assert.Contains(t, css, "font-size: 120% !important;")
}

func TestBuildStylesheet_StylesheetFont(t *testing.T) {
	spec := entity.FontSpec{FontURL: cssFontURL}

	css := override.BuildStylesheet(spec, nil, "Roboto Mono")

	assert.NotContains(t, css, "@font-face")
	assert.Contains(t, css, "font-family: 'Roboto Mono', sans-serif !important;")
	assert.Contains(t, css, "font-weight: normal !important;")
	assert.Contains(t, css, "line-height: 1.5 !important;")
	assert.Contains(t, css, "font-size: 100% !important;")
}

func TestBuildStylesheet_CoversEverySelector(t *testing.T) {
	css := override.BuildStylesheet(entity.FontSpec{FontURL: cssFontURL}, nil, "X")

	rule := strings.Join(override.Selectors(), ", ") + " {"
	assert.Contains(t, css, rule)
	assert.Contains(t, override.Selectors(), "html *")
	assert.Contains(t, override.Selectors(), "button")
}

func TestBuildStylesheet_SanitizesFamily(t *testing.T) {
	css := override.BuildStylesheet(entity.FontSpec{FontURL: cssFontURL}, nil, `Evil'; } body { color: red`)

	assert.NotContains(t, css, "color: red;")
	assert.Contains(t, css, "font-family: 'Evil  body  color: red', sans-serif !important;")

	css = override.BuildStylesheet(entity.FontSpec{FontURL: cssFontURL}, nil, " '' ")
	assert.Contains(t, css, "font-family: 'FontifyCustomFont'")
}

func TestBuildStylesheet_IsDeterministic(t *testing.T) {
	spec := entity.FontSpec{FontURL: cssFontURL, FontSizeScale: 0.9, LineHeight: 1.25}

	assert.Equal(t,
		override.BuildStylesheet(spec, nil, "A"),
		override.BuildStylesheet(spec, nil, "A"))
	assert.Contains(t, override.BuildStylesheet(spec, nil, "A"), "font-size: 90% !important;")
}
