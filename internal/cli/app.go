// Package cli holds the state shared by the fontify commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/fontify/internal/bootstrap"
	"github.com/bnema/fontify/internal/cli/styles"
	"github.com/bnema/fontify/internal/infrastructure/config"
	"github.com/bnema/fontify/internal/logging"
)

// Options are the global command line flags.
type Options struct {
	ConfigFile string
	LogLevel   string
	Backend    string
}

// App holds CLI dependencies.
type App struct {
	*bootstrap.App
	Manager *config.Manager
	Theme   *styles.Theme

	ctx context.Context
}

// NewApp loads the configuration, applies flag overrides and wires the application.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	manager, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := manager.Get()
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.Backend != "" {
		cfg.Storage.Backend = config.StorageBackend(opts.Backend)
	}

	ctx = bootstrap.WithLogger(ctx, cfg.Logging)
	logging.FromContext(ctx).Debug().
		Str("config", manager.GetConfigFile()).
		Str("backend", string(cfg.Storage.Backend)).
		Msg("starting fontify")

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		App:     app,
		Manager: manager,
		Theme:   styles.NewTheme(),
		ctx:     ctx,
	}, nil
}

// Ctx returns the context carrying the configured logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
