package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/fontify/internal/application/usecase"
	"github.com/bnema/fontify/internal/cli"
	"github.com/bnema/fontify/internal/cli/model"
	"github.com/bnema/fontify/internal/cli/styles"
)

var presetSaveOpts struct {
	fontURL    string
	scale      float64
	weight     string
	lineHeight float64
}

var presetCmd = &cobra.Command{
	Use:     "preset",
	Aliases: []string{"presets"},
	Short:   "Manage named font presets",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		presets, active, err := a.Services.Presets.List(a.Ctx())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, map[string]any{"presets": presets, "activePreset": active})
		}
		if len(presets) == 0 {
			printLine(cmd, a.Theme.Subtle.Render("No presets saved."))
			return nil
		}
		printLine(cmd, styles.RenderTable(a.Theme, styles.PresetTableColumns(), styles.PresetRows(presets, active)))
		return nil
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		preset, err := a.Services.Presets.Get(a.Ctx(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, preset)
		}
		item := styles.PresetItem{Preset: preset}
		printLine(cmd, a.Theme.Title.Render(preset.Name))
		printLine(cmd, a.Theme.Subtle.Render(item.Description()))
		for _, r := range preset.ExcludeURLs {
			printLine(cmd, "  "+r.Pattern+" "+a.Theme.KindBadge(r.Kind.Label()))
		}
		return nil
	},
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current settings as a preset",
	Long: `Save the current settings as a named preset.

Flags override the current font URL and adjustments for the saved preset only.
Saving under an existing name replaces that preset.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		out, err := a.Services.Presets.Save(a.Ctx(), usecase.SavePresetInput{
			Name:          args[0],
			FontURL:       presetSaveOpts.fontURL,
			FontSizeScale: presetSaveOpts.scale,
			FontWeight:    presetSaveOpts.weight,
			LineHeight:    presetSaveOpts.lineHeight,
		})
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, out.Preset)
		}
		verb := "Updated"
		if out.Created {
			verb = "Saved"
		}
		printStatus(cmd, a.Theme, true, "%s preset %s", verb, out.Preset.Name)
		return nil
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a preset",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if err := a.Services.Presets.Delete(a.Ctx(), args[0]); err != nil {
			return err
		}
		printStatus(cmd, a.Theme, true, "Deleted preset %s", args[0])
		return nil
	},
}

var presetApplyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Make a preset the live settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		out, err := a.Services.ApplyPreset.Execute(a.Ctx(), args[0])
		if err != nil {
			return err
		}
		return reportApplied(cmd, a, out)
	},
}

var presetPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a preset to apply interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		presets, active, err := a.Services.Presets.List(a.Ctx())
		if err != nil {
			return err
		}

		m := model.NewPresetPickerModel(a.Ctx(), a.Theme, presets, active, a.Services.ApplyPreset)
		final, err := tea.NewProgram(m, tea.WithContext(a.Ctx())).Run()
		if err != nil {
			return err
		}

		picker, ok := final.(model.PresetPickerModel)
		if !ok || picker.Cancelled() {
			return nil
		}
		out, err := picker.Result()
		if err != nil {
			return err
		}
		if out == nil {
			return nil
		}
		return reportApplied(cmd, a, out)
	},
}

func init() {
	f := presetSaveCmd.Flags()
	f.StringVar(&presetSaveOpts.fontURL, "font-url", "", "font URL (default: current)")
	f.Float64Var(&presetSaveOpts.scale, "scale", 0, "font size multiplier (default: current)")
	f.StringVar(&presetSaveOpts.weight, "weight", "", "CSS font-weight (default: current)")
	f.Float64Var(&presetSaveOpts.lineHeight, "line-height", 0, "line height (default: current)")

	presetCmd.AddCommand(presetListCmd, presetShowCmd, presetSaveCmd, presetDeleteCmd, presetApplyCmd, presetPickCmd)
	rootCmd.AddCommand(presetCmd)
}

func reportApplied(cmd *cobra.Command, a *cli.App, out *usecase.ApplyPresetOutput) error {
	if jsonOutput {
		return printJSON(cmd, map[string]any{"preset": out.Preset, "broadcast": out.Broadcast})
	}
	printStatus(cmd, a.Theme, true, "Applied preset %s", out.Preset.Name)
	if b := out.Broadcast; b != nil && len(b.Reloaded)+len(b.Skipped)+len(b.Failed) > 0 {
		printLine(cmd, a.Theme.Subtle.Render(fmt.Sprintf("pages reloaded %d, skipped %d, failed %d",
			len(b.Reloaded), len(b.Skipped), len(b.Failed))))
		if len(b.Failed) > 0 {
			printLine(cmd, a.Theme.WarningStyle.Render("failed: "+strings.Join(b.Failed, ", ")))
		}
	}
	return nil
}
