package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/fontify/internal/cli/styles"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear downloaded font files",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached font URLs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		urls, err := a.Services.FontCache.List(a.Ctx())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, map[string][]string{"urls": urls})
		}
		if len(urls) == 0 {
			printLine(cmd, a.Theme.Subtle.Render("Font cache is empty."))
			return nil
		}
		for _, u := range urls {
			printLine(cmd, a.Theme.Highlight.Render(styles.IconCache)+" "+u)
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached font file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		n, err := a.Services.FontCache.Execute(a.Ctx())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, map[string]int{"cleared": n})
		}
		printStatus(cmd, a.Theme, true, "Cleared %d cached fonts", n)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheListCmd, cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
