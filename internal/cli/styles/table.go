package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontify/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// ExclusionTableColumns returns columns for the exclusion list table.
func ExclusionTableColumns() []table.Column {
	return []table.Column{
		{Title: "Pattern", Width: 48},
		{Title: "Type", Width: 8},
		{Title: "Scope", Width: 8},
	}
}

// ExclusionRows converts exclusion rules to table rows.
func ExclusionRows(rules []entity.ExclusionRule) []table.Row {
	rows := make([]table.Row, 0, len(rules))
	for _, r := range rules {
		kind := string(r.Kind)
		if r.IsLegacy() {
			kind = "legacy"
		}
		rows = append(rows, table.Row{Truncate(r.Pattern, 48), kind, r.Kind.Label()})
	}
	return rows
}

// PresetTableColumns returns columns for the preset list table.
func PresetTableColumns() []table.Column {
	return []table.Column{
		{Title: "", Width: 2},
		{Title: "Name", Width: 20},
		{Title: "Font URL", Width: 44},
		{Title: "Scale", Width: 6},
		{Title: "Weight", Width: 8},
		{Title: "Line", Width: 6},
	}
}

// PresetRows converts presets to table rows, marking the active one.
func PresetRows(presets []entity.Preset, active string) []table.Row {
	rows := make([]table.Row, 0, len(presets))
	for _, p := range presets {
		mark := ""
		if p.Name == active {
			mark = "*"
		}
		rows = append(rows, table.Row{
			mark,
			Truncate(p.Name, 20),
			Truncate(p.FontURL, 44),
			optionalFloat(p.FontSizeScale),
			optionalString(p.FontWeight),
			optionalFloat(p.LineHeight),
		})
	}
	return rows
}

// RenderTable renders a static table sized to its rows.
func RenderTable(theme *Theme, columns []table.Column, rows []table.Row) string {
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	return NewStyledTable(theme, columns, rows, width, len(rows)+1).View()
}

// Truncate shortens s to max runes, ending with an ellipsis.
func Truncate(s string, max int) string {
	const ellipsis = "..."
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return string(r[:max])
	}
	return string(r[:max-len(ellipsis)]) + ellipsis
}

func optionalFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func optionalString(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}
