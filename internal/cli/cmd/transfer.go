package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const maxImportBytes = 1 << 20

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the settings to a JSON document",
	Long: `Write the settings to a JSON document.

The document holds the font URL, adjustments, exclusions and presets. It is
printed to stdout unless --output names a file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		doc, err := a.Services.Transfer.Export(a.Ctx())
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}
		data = append(data, '\n')

		if exportOutput == "" || exportOutput == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		const filePerm = 0o644
		if err := os.WriteFile(exportOutput, data, filePerm); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		printStatus(cmd, a.Theme, true, "Exported settings to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Load settings from a JSON document",
	Long: `Load settings from a JSON document written by 'fontify export'.

Only the keys present in the document are written. Use - to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		var r io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()
			r = f
		}
		data, err := io.ReadAll(io.LimitReader(r, maxImportBytes))
		if err != nil {
			return fmt.Errorf("failed to read import: %w", err)
		}

		out, err := a.Services.Transfer.Import(a.Ctx(), data)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, map[string][]string{"keys": out.Keys})
		}
		printStatus(cmd, a.Theme, true, "Imported %d keys: %s", len(out.Keys), strings.Join(out.Keys, ", "))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd, importCmd)
}
