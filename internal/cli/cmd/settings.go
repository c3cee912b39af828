package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/fontify/internal/cli"
	"github.com/bnema/fontify/internal/domain/entity"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the current font settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		settings, err := a.Services.Settings.Get(a.Ctx())
		if err != nil {
			return err
		}
		return printSettings(cmd, a, settings)
	},
}

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn font replacement on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return setEnabled(cmd, true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn font replacement off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return setEnabled(cmd, false)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip font replacement on or off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		enabled, err := a.Services.Settings.Toggle(a.Ctx())
		if err != nil {
			return err
		}
		return reportEnabled(cmd, a, enabled)
	},
}

func init() {
	settingsCmd.AddCommand(enableCmd, disableCmd, toggleCmd)
	rootCmd.AddCommand(settingsCmd)
}

func setEnabled(cmd *cobra.Command, enabled bool) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.Services.Settings.SetEnabled(a.Ctx(), enabled); err != nil {
		return err
	}
	return reportEnabled(cmd, a, enabled)
}

func reportEnabled(cmd *cobra.Command, a *cli.App, enabled bool) error {
	if jsonOutput {
		return printJSON(cmd, map[string]bool{"isEnabled": enabled})
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	printStatus(cmd, a.Theme, true, "Font replacement %s", state)
	return nil
}

func printSettings(cmd *cobra.Command, a *cli.App, s *entity.Settings) error {
	if jsonOutput {
		return printJSON(cmd, map[string]any{
			entity.KeyIsEnabled:     s.IsEnabled,
			entity.KeyFontURL:       s.Font.FontURL,
			entity.KeyFontSizeScale: s.Font.FontSizeScale,
			entity.KeyFontWeight:    s.Font.FontWeight,
			entity.KeyLineHeight:    s.Font.LineHeight,
			entity.KeyExcludeURLs:   s.ExcludeURLs,
			entity.KeyFontPresets:   s.FontPresets,
			entity.KeyActivePreset:  s.ActivePreset,
		})
	}

	t := a.Theme
	printLine(cmd, t.Title.Render("Fontify settings"))
	printLine(cmd, t.Field("enabled", strconv.FormatBool(s.IsEnabled)))
	printLine(cmd, t.Field("font url", orNone(s.Font.FontURL)))
	printLine(cmd, t.Field("size scale", formatFloat(s.Font.FontSizeScale)))
	printLine(cmd, t.Field("weight", s.Font.FontWeight))
	printLine(cmd, t.Field("line height", formatFloat(s.Font.LineHeight)))
	printLine(cmd, t.Field("exclusions", strconv.Itoa(len(s.ExcludeURLs))))
	printLine(cmd, t.Field("presets", strconv.Itoa(len(s.FontPresets))))
	printLine(cmd, t.Field("active preset", orNone(s.ActivePresetName())))
	return nil
}
