package styles

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontify/internal/domain/entity"
)

// PresetItem represents a font preset in a list.
type PresetItem struct {
	Preset entity.Preset
	Active bool
}

// FilterValue implements list.Item.
func (i PresetItem) FilterValue() string {
	return i.Preset.Name + " " + i.Preset.FontURL
}

// Description summarizes the preset's typography adjustments.
func (i PresetItem) Description() string {
	desc := i.Preset.FontURL
	if desc == "" {
		desc = "default font"
	}
	if v := i.Preset.FontSizeScale; v != nil {
		desc += fmt.Sprintf(" · scale %s", strconv.FormatFloat(*v, 'g', -1, 64))
	}
	if v := i.Preset.FontWeight; v != nil {
		desc += " · weight " + *v
	}
	if v := i.Preset.LineHeight; v != nil {
		desc += fmt.Sprintf(" · line %s", strconv.FormatFloat(*v, 'g', -1, 64))
	}
	return desc
}

// PresetItems converts presets to list items.
func PresetItems(presets []entity.Preset, active string) []list.Item {
	items := make([]list.Item, 0, len(presets))
	for _, p := range presets {
		items = append(items, PresetItem{Preset: p, Active: p.Name == active})
	}
	return items
}

// PresetDelegate renders preset items with theme styling.
type PresetDelegate struct {
	Theme *Theme
}

// NewPresetDelegate creates a themed preset list delegate.
func NewPresetDelegate(theme *Theme) PresetDelegate {
	return PresetDelegate{Theme: theme}
}

// Height returns the height of each item.
func (d PresetDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d PresetDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d PresetDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d PresetDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(PresetItem)
	if !ok {
		return
	}

	t := d.Theme
	isSelected := index == m.Index()
	const maxDescLength = 70

	cursor := cursorEmpty
	if isSelected {
		cursor = cursorSelected
	}

	titleStyle := t.ListItemTitle
	descStyle := t.ListItemDesc
	if isSelected {
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
		descStyle = descStyle.Foreground(t.Text)
	}

	title := titleStyle.Render(pi.Preset.Name)
	if pi.Active {
		title = lipgloss.JoinHorizontal(lipgloss.Left, title, " ", t.AccentBadge("active"))
	}

	line1 := lipgloss.JoinHorizontal(lipgloss.Left, t.Highlight.Render(cursor), title)
	line2 := lipgloss.NewStyle().PaddingLeft(len(cursorEmpty)).
		Render(descStyle.Render(Truncate(pi.Description(), maxDescLength)))

	_, _ = fmt.Fprint(w, lipgloss.JoinVertical(lipgloss.Left, line1, line2))
}
