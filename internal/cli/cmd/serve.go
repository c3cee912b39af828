package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/fontify/internal/cli"
	"github.com/bnema/fontify/internal/infrastructure/api"
	"github.com/bnema/fontify/internal/infrastructure/config"
	"github.com/bnema/fontify/internal/infrastructure/proxy"
	"github.com/bnema/fontify/internal/logging"
)

var serveOpts struct {
	listen    string
	withProxy bool
	open      []string
}

var proxyOpts struct {
	listen string
	mitm   bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP control plane",
	Long: `Run the JSON control plane for settings, exclusions, presets and pages.

Pages opened through the API are kept live: applying a preset reloads them.
With --proxy the font proxy runs alongside. The config file is watched and
changes that need a restart are reported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		ctx := a.Ctx()
		log := logging.FromContext(ctx)

		watchConfig(a)

		for _, u := range serveOpts.open {
			if _, err := a.Pages.Open(ctx, u); err != nil {
				log.Warn().Err(err).Str("url", u).Msg("failed to open page")
			}
		}

		listen := serveOpts.listen
		if listen == "" {
			listen = a.Config.Server.Listen
		}
		handler := api.NewRouter(a.Services, *log)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Info().Str("addr", listen).Msg("control plane listening")
			return api.ListenAndServe(gctx, listen, handler)
		})
		if serveOpts.withProxy {
			g.Go(func() error {
				return runProxy(gctx, a)
			})
		}
		return g.Wait()
	},
}

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Run the font rewriting HTTP proxy",
	Long: `Run an HTTP proxy that applies the font override to HTML responses.

Point a browser's HTTP proxy setting at the listen address. HTTPS pages are
only rewritten with --mitm, which requires trusting the goproxy CA.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		watchConfig(a)
		return runProxy(a.Ctx(), a)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveOpts.listen, "listen", "", "control plane address (default server.listen)")
	serveCmd.Flags().BoolVar(&serveOpts.withProxy, "proxy", false, "also run the font proxy")
	serveCmd.Flags().StringArrayVar(&serveOpts.open, "open", nil, "open a page on start (repeatable)")

	for _, c := range []*cobra.Command{serveCmd, proxyCmd} {
		c.Flags().StringVar(&proxyOpts.listen, "proxy-listen", "", "proxy address (default proxy.listen)")
		c.Flags().BoolVar(&proxyOpts.mitm, "mitm", false, "intercept HTTPS (default proxy.mitm)")
	}

	rootCmd.AddCommand(serveCmd, proxyCmd)
}

func runProxy(ctx context.Context, a *cli.App) error {
	cfg := a.ProxyConfig()
	if proxyOpts.mitm {
		cfg.MITM = true
	}
	listen := proxyOpts.listen
	if listen == "" {
		listen = a.Config.Proxy.Listen
	}
	return proxy.New(a.Ctx(), a.EngineDeps(), cfg).ListenAndServe(ctx, listen)
}

// watchConfig reports config file edits. Font settings live in the store and
// are read on every engine start; the config sections need a restart.
func watchConfig(a *cli.App) {
	log := logging.FromContext(a.Ctx())
	current := *a.Config
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		if *cfg == current {
			return
		}
		log.Warn().Str("file", a.Manager.GetConfigFile()).Msg("config file changed, restart to apply")
	})
	if err := a.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to watch config file")
	}
}
