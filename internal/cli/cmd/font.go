package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontify/internal/application/usecase"
	"github.com/bnema/fontify/internal/cli"
	"github.com/bnema/fontify/internal/domain/entity"
)

var fontSetOpts struct {
	scale          float64
	weight         string
	lineHeight     float64
	skipValidation bool
}

var fontCmd = &cobra.Command{
	Use:   "font",
	Short: "Manage the replacement font",
}

var fontSetCmd = &cobra.Command{
	Use:   "set <url>",
	Short: "Set the font URL and typography adjustments",
	Long: `Set the replacement font.

The URL may be a Google Fonts stylesheet, another CSS stylesheet or a direct
.woff, .woff2, .ttf or .otf file. It is probed before saving unless
--skip-validation is given. Adjustments left unset keep their defaults.

Examples:
  fontify font set "https://fonts.googleapis.com/css2?family=Inter"
  fontify font set https://example.com/fira.woff2 --scale 1.1 --weight 500`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		spec, err := a.Services.Settings.SaveFont(a.Ctx(), usecase.SaveFontInput{
			FontURL:        args[0],
			FontSizeScale:  fontSetOpts.scale,
			FontWeight:     fontSetOpts.weight,
			LineHeight:     fontSetOpts.lineHeight,
			SkipValidation: fontSetOpts.skipValidation,
		})
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, map[string]any{
				entity.KeyFontURL:       spec.FontURL,
				entity.KeyFontSizeScale: spec.FontSizeScale,
				entity.KeyFontWeight:    spec.FontWeight,
				entity.KeyLineHeight:    spec.LineHeight,
			})
		}
		printStatus(cmd, a.Theme, true, "Font set to %s", spec.FontURL)
		printLine(cmd, a.Theme.Field("size scale", formatFloat(spec.FontSizeScale)))
		printLine(cmd, a.Theme.Field("weight", spec.FontWeight))
		printLine(cmd, a.Theme.Field("line height", formatFloat(spec.LineHeight)))
		return nil
	},
}

var fontResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset size scale, weight and line height to their defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if err := a.Services.Settings.ResetAdjustments(a.Ctx()); err != nil {
			return err
		}
		printStatus(cmd, a.Theme, true, "Typography adjustments reset")
		return nil
	},
}

var fontValidateCmd = &cobra.Command{
	Use:   "validate <url>",
	Short: "Check that a font URL is supported and reachable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		result := a.Services.Validate.Execute(a.Ctx(), args[0])
		if jsonOutput {
			if err := printJSON(cmd, result); err != nil {
				return err
			}
		} else {
			printValidation(cmd, a, result)
		}
		if !result.Valid {
			return fmt.Errorf("%w: %s", usecase.ErrInvalidFontURL, result.Reason)
		}
		return nil
	},
}

func init() {
	f := fontSetCmd.Flags()
	f.Float64Var(&fontSetOpts.scale, "scale", 0, "font size multiplier (default 1)")
	f.StringVar(&fontSetOpts.weight, "weight", "", "CSS font-weight (default normal)")
	f.Float64Var(&fontSetOpts.lineHeight, "line-height", 0, "unitless line height (default 1.5)")
	f.BoolVar(&fontSetOpts.skipValidation, "skip-validation", false, "save without probing the URL")

	fontCmd.AddCommand(fontSetCmd, fontResetCmd, fontValidateCmd)
	rootCmd.AddCommand(fontCmd)
}

func printValidation(cmd *cobra.Command, a *cli.App, v *usecase.FontURLValidation) {
	msg := fmt.Sprintf("%s (%s)", v.URL, v.Kind)
	if v.Reason != "" {
		msg += ": " + v.Reason
	}
	printStatus(cmd, a.Theme, v.Valid, "%s", msg)
	if v.ContentType != "" {
		printLine(cmd, a.Theme.Field("content type", v.ContentType))
	}
}
