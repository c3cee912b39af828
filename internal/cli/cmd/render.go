package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/fontify/internal/cli"
	domainurl "github.com/bnema/fontify/internal/domain/url"
	"github.com/bnema/fontify/internal/infrastructure/proxy"
	"github.com/bnema/fontify/internal/logging"
)

var renderOpts struct {
	file    string
	pageURL string
	output  string
}

var renderCmd = &cobra.Command{
	Use:   "render [url]",
	Short: "Print a page with the font override applied",
	Long: `Load a page, apply the font override and print the resulting HTML.

With a URL argument the page is fetched. With --file a local HTML file is
read instead, and --url gives the address used to match exclusions.

Examples:
  fontify render https://example.com/article
  fontify render --file saved.html --url https://example.com/article -o out.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}

		var out []byte
		switch {
		case renderOpts.file != "":
			out, err = renderFile(a, renderOpts.file, renderOpts.pageURL)
		case len(args) == 1:
			out, err = renderURL(a, domainurl.Normalize(args[0]))
		default:
			return fmt.Errorf("give a URL or --file")
		}
		if err != nil {
			return err
		}

		if renderOpts.output == "" || renderOpts.output == "-" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		const filePerm = 0o644
		return os.WriteFile(renderOpts.output, out, filePerm)
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderOpts.file, "file", "", "read the page from a local HTML file")
	f.StringVar(&renderOpts.pageURL, "url", "", "page URL used for exclusion matching with --file")
	f.StringVarP(&renderOpts.output, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

func settleTimeout(a *cli.App) time.Duration {
	return time.Duration(a.Config.Proxy.SettleTimeoutMs) * time.Millisecond
}

func renderFile(a *cli.App, path, pageURL string) ([]byte, error) {
	page, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if pageURL == "" {
		pageURL = "file://" + path
	}

	out, changed, err := proxy.Rewrite(a.Ctx(), a.EngineDeps(), a.ProxyConfig().Engine, settleTimeout(a), pageURL, page)
	if err != nil {
		return nil, err
	}
	logging.FromContext(a.Ctx()).Debug().Str("url", pageURL).Bool("changed", changed).Msg("rendered file")
	return out, nil
}

func renderURL(a *cli.App, pageURL string) ([]byte, error) {
	ctx := a.Ctx()
	info, err := a.Pages.Open(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = a.Pages.Close(info.ID) }()

	settleCtx, cancel := context.WithTimeout(ctx, settleTimeout(a))
	defer cancel()
	if err := a.Pages.Settle(settleCtx, info.ID); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("url", pageURL).Msg("override did not settle")
	}

	var buf bytes.Buffer
	if err := a.Pages.Render(info.ID, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
