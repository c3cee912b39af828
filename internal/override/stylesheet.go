package override

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/domain/entity"
)

// Element IDs of the injected override. Pages never use these, so the engine
// can find and replace its own elements.
const (
	StyleElementID = "fontify-custom-font"
	LinkElementID  = "fontify-custom-link"
)

// overrideSelectors outrank typical page specificity: a wildcard under the
// two document roots plus the common text-bearing elements.
var overrideSelectors = []string{
	"html *", "body *",
	"div", "span", "p", "h1", "h2", "h3", "h4", "h5", "h6",
	"a", "ul", "li", "table", "td", "th", "form", "input", "button",
}

// Selectors returns the selector list used by the override rules.
func Selectors() []string {
	out := make([]string, len(overrideSelectors))
	copy(out, overrideSelectors)
	return out
}

// BuildStylesheet renders the override CSS. With a payload the font is
// declared inline through @font-face; without one the family is expected to
// come from an external stylesheet link.
func BuildStylesheet(spec entity.FontSpec, payload *entity.FontPayload, family string) string {
	spec = spec.Normalize()
	family = cssFamily(family)
	if family == "" {
		family = entity.DefaultFontFamily
	}

	var b strings.Builder
	if payload != nil && payload.DataURL != "" {
		fmt.Fprintf(&b, "@font-face {\n  font-family: '%s';\n  src: url('%s');\n  font-display: swap;\n}\n",
			family, cssURL(payload.DataURL))
	}

	fmt.Fprintf(&b, "%s {\n", strings.Join(overrideSelectors, ", "))
	fmt.Fprintf(&b, "  font-family: '%s', sans-serif !important;\n", family)
	fmt.Fprintf(&b, "  font-weight: %s !important;\n", spec.FontWeight)
	fmt.Fprintf(&b, "  line-height: %s !important;\n", formatNumber(spec.LineHeight))
	b.WriteString("}\n")
	fmt.Fprintf(&b, "html {\n  font-size: %s%% !important;\n}\n", formatNumber(spec.FontSizeScale*100))
	return b.String()
}

func styleNode(css string) port.Node {
	return port.Node{
		Tag:   "style",
		ID:    StyleElementID,
		Attrs: map[string]string{"id": StyleElementID},
		Text:  css,
	}
}

func linkNode(href string) port.Node {
	return port.Node{
		Tag: "link",
		ID:  LinkElementID,
		Attrs: map[string]string{
			"id":   LinkElementID,
			"rel":  "stylesheet",
			"href": href,
		},
	}
}

func isOverrideID(id string) bool {
	return id == StyleElementID || id == LinkElementID
}

func formatNumber(v float64) string {
	// Round away float noise such as 1.2*100 = 120.00000000000001.
	return strconv.FormatFloat(v, 'f', -1, 32)
}

// cssFamily strips characters that could close the quoted family name.
func cssFamily(family string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', '\\', ';', '{', '}', '<', '>', '\n', '\r':
			return -1
		}
		return r
	}, strings.TrimSpace(family))
}

func cssURL(u string) string {
	return strings.NewReplacer(`'`, `%27`, `\`, `%5C`, "\n", "", "\r", "").Replace(u)
}
