package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// KindBadge renders an exclusion kind label.
func (t *Theme) KindBadge(label string) string {
	switch label {
	case "site":
		return t.StatusBadge(label, t.Background, t.Warning)
	case "page":
		return t.AccentBadge(label)
	default:
		return t.MutedBadge(label)
	}
}
