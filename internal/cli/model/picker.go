// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fontify/internal/application/usecase"
	"github.com/bnema/fontify/internal/cli/styles"
	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/logging"
)

// PresetApplier applies a preset by name.
type PresetApplier interface {
	Execute(ctx context.Context, name string) (*usecase.ApplyPresetOutput, error)
}

// PresetPickerModel lets the user choose a preset and applies it.
type PresetPickerModel struct {
	list  list.Model
	help  help.Model
	keys  styles.PickerKeyMap
	theme *styles.Theme

	applying  bool
	cancelled bool
	result    *usecase.ApplyPresetOutput
	err       error

	ctx     context.Context
	applier PresetApplier
}

type presetAppliedMsg struct {
	output *usecase.ApplyPresetOutput
	err    error
}

// NewPresetPickerModel creates a picker over presets with the active one preselected.
func NewPresetPickerModel(
	ctx context.Context,
	theme *styles.Theme,
	presets []entity.Preset,
	active string,
	applier PresetApplier,
) PresetPickerModel {
	const (
		defaultWidth  = 80
		defaultHeight = 20
	)

	items := styles.PresetItems(presets, active)
	l := list.New(items, styles.NewPresetDelegate(theme), defaultWidth, defaultHeight)
	l.Title = "Font presets"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	for i, p := range presets {
		if p.Name == active {
			l.Select(i)
			break
		}
	}

	logging.FromContext(ctx).Debug().Int("presets", len(presets)).Msg("creating preset picker")

	return PresetPickerModel{
		list:    l,
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultPickerKeyMap(),
		theme:   theme,
		ctx:     ctx,
		applier: applier,
	}
}

// Init implements tea.Model.
func (m PresetPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PresetPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		const helpHeight = 2
		m.list.SetSize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case presetAppliedMsg:
		m.applying = false
		m.result = msg.output
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if m.applying {
			return m, nil
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Apply):
			item, ok := m.list.SelectedItem().(styles.PresetItem)
			if !ok {
				return m, nil
			}
			m.applying = true
			return m, m.apply(item.Preset.Name)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m PresetPickerModel) apply(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.applier.Execute(m.ctx, name)
		if err != nil {
			logging.FromContext(m.ctx).Error().Err(err).Str("preset", name).Msg("failed to apply preset")
		}
		return presetAppliedMsg{output: out, err: err}
	}
}

// View implements tea.Model.
func (m PresetPickerModel) View() string {
	if len(m.list.Items()) == 0 {
		return m.theme.Subtle.Render("No presets saved. Use 'fontify preset save <name>' first.") + "\n"
	}
	footer := m.help.View(m.keys)
	if m.applying {
		footer = m.theme.Subtle.Render("Applying...")
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), footer)
}

// Result returns the applied preset, or nil when the picker was cancelled.
func (m PresetPickerModel) Result() (*usecase.ApplyPresetOutput, error) {
	return m.result, m.err
}

// Cancelled reports whether the user left without applying.
func (m PresetPickerModel) Cancelled() bool {
	return m.cancelled
}
