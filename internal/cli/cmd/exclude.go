package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/fontify/internal/cli/styles"
	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/exclusion"
	domainurl "github.com/bnema/fontify/internal/domain/url"
)

var (
	excludeKind    string
	excludeCurrent bool
)

var excludeCmd = &cobra.Command{
	Use:     "exclude",
	Aliases: []string{"exclusions"},
	Short:   "Manage sites where pages keep their own fonts",
}

var excludeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exclusion rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		rules, err := a.Services.Exclusions.List(a.Ctx())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, rules)
		}
		if len(rules) == 0 {
			printLine(cmd, a.Theme.Subtle.Render("No exclusions."))
			return nil
		}
		printLine(cmd, styles.RenderTable(a.Theme, styles.ExclusionTableColumns(), styles.ExclusionRows(rules)))
		return nil
	},
}

var excludeAddCmd = &cobra.Command{
	Use:   "add <pattern-or-url>",
	Short: "Add an exclusion rule",
	Long: `Add an exclusion rule.

Without --current the argument is stored as a pattern of the given --type
(exact, domain or prefix). When --type is omitted it is inferred from the
pattern. With --current the argument is the URL of the page being viewed and
the rule is derived from it. --type then picks the scope, and the suggested
scope is used when it is omitted.

Examples:
  fontify exclude add https://example.com --type domain
  fontify exclude add https://docs.example.com/api/v2 --current --type prefix`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		kind, err := entity.ParseExclusionKind(excludeKind)
		if err != nil {
			return err
		}

		target := domainurl.Normalize(args[0])
		var rule entity.ExclusionRule
		if excludeCurrent {
			rule, err = a.Services.Exclusions.AddCurrent(a.Ctx(), target, kind)
		} else {
			if kind == entity.ExclusionKindLegacy {
				kind = exclusion.InferKind(target)
			}
			rule, err = a.Services.Exclusions.Add(a.Ctx(), entity.ExclusionRule{Pattern: target, Kind: kind})
		}
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, rule)
		}
		printStatus(cmd, a.Theme, true, "Excluded %s %s", rule.Pattern, a.Theme.KindBadge(rule.Kind.Label()))
		return nil
	},
}

var excludeRemoveCmd = &cobra.Command{
	Use:     "remove <pattern>",
	Aliases: []string{"rm"},
	Short:   "Remove an exclusion rule",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if err := a.Services.Exclusions.Remove(a.Ctx(), args[0]); err != nil {
			return err
		}
		printStatus(cmd, a.Theme, true, "Removed %s", args[0])
		return nil
	},
}

var excludeCheckCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Report whether a URL is excluded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		result, err := a.Services.Exclusions.Check(a.Ctx(), domainurl.Normalize(args[0]))
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, result)
		}
		domain := domainurl.ExtractDomain(result.URL)
		if !result.Excluded {
			printLine(cmd, a.Theme.Subtle.Render("No rule for "+domain+" matches "+result.URL))
			return nil
		}
		printLine(cmd, a.Theme.WarningStyle.Render(styles.IconFilter)+" "+
			result.URL+" is excluded by "+result.Rule.Pattern+" "+a.Theme.KindBadge(result.Rule.Kind.Label()))
		return nil
	},
}

var excludeSuggestCmd = &cobra.Command{
	Use:   "suggest <url>",
	Short: "Print the recommended exclusion rule for a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		rule, err := a.Services.Exclusions.Suggest(domainurl.Normalize(args[0]))
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, rule)
		}
		printLine(cmd, rule.Pattern+" "+a.Theme.KindBadge(rule.Kind.Label()))
		return nil
	},
}

func init() {
	excludeAddCmd.Flags().StringVar(&excludeKind, "type", "", "rule type: exact, domain or prefix")
	excludeAddCmd.Flags().BoolVar(&excludeCurrent, "current", false, "derive the rule from a page URL")

	excludeCmd.AddCommand(excludeListCmd, excludeAddCmd, excludeRemoveCmd, excludeCheckCmd, excludeSuggestCmd)
	rootCmd.AddCommand(excludeCmd)
}
