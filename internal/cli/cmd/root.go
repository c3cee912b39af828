// Package cmd provides Cobra CLI commands for fontify.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/fontify/internal/cli"
	"github.com/bnema/fontify/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	globalOpts cli.Options
	jsonOutput bool
	rootCmd    = &cobra.Command{
		Use:   "fontify",
		Short: "Replace the fonts of web pages with one you choose",
		Long: `Fontify overrides the typography of web pages.

It stores a font URL, size scale, weight and line height, plus a list of
sites where pages keep their own fonts. Settings can be saved as named
presets and applied to every open page at once.

Pages are rewritten by the 'render' command, by the HTTP 'proxy', or by
pages opened through the 'serve' control plane.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			// RunE errors skip PersistentPostRun
			closeApp()

			var err error
			app, err = cli.NewApp(cmd.Context(), globalOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalOpts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/fontify/config.toml)")
	flags.StringVar(&globalOpts.LogLevel, "log-level", "", "override logging.level")
	flags.StringVar(&globalOpts.Backend, "backend", "", "override storage.backend (sqlite, redis, memory)")
	flags.BoolVar(&jsonOutput, "json", false, "print machine readable JSON")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command until it returns or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	closeApp()
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		if jsonOutput {
			_ = printJSON(cmd, buildInfo)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
	},
}

func closeApp() {
	if app != nil {
		_ = app.Close()
		app = nil
	}
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
