package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontify/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the fontify configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		printLine(cmd, a.Manager.GetConfigFile())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		return printJSON(cmd, a.Config)
	},
}

var schemaCmd = &cobra.Command{
	Use:       "schema <config|export>",
	Short:     "Print a JSON Schema for the config file or the export document",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"config", "export"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		switch args[0] {
		case "config":
			data, err = config.ConfigSchema()
		case "export":
			data, err = config.ExportSchema()
		default:
			return fmt.Errorf("unknown schema %q (want config or export)", args[0])
		}
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Fill settings keys that were never stored with their defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		out, err := a.Migrate.Execute(a.Ctx())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, map[string][]string{"filled": out.Filled})
		}
		if len(out.Filled) == 0 {
			printStatus(cmd, a.Theme, true, "Settings are up to date")
			return nil
		}
		printStatus(cmd, a.Theme, true, "Filled %d keys with defaults", len(out.Filled))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configShowCmd)
	rootCmd.AddCommand(configCmd, schemaCmd, migrateCmd)
}
