// Package bootstrap wires the configured store, use cases and adapters.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/application/usecase"
	"github.com/bnema/fontify/internal/domain/repository"
	"github.com/bnema/fontify/internal/infrastructure/api"
	"github.com/bnema/fontify/internal/infrastructure/config"
	"github.com/bnema/fontify/internal/infrastructure/fetch"
	"github.com/bnema/fontify/internal/infrastructure/htmldoc"
	"github.com/bnema/fontify/internal/infrastructure/pages"
	"github.com/bnema/fontify/internal/infrastructure/persistence/kvstore"
	"github.com/bnema/fontify/internal/infrastructure/persistence/redisstore"
	"github.com/bnema/fontify/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/fontify/internal/infrastructure/proxy"
	"github.com/bnema/fontify/internal/logging"
	"github.com/bnema/fontify/internal/override"
)

// App holds everything a command needs.
type App struct {
	Config    *config.Config
	Store     port.KeyValueStore
	Settings  repository.SettingsRepository
	FontCache repository.FontCacheRepository
	Fetcher   *fetch.Client
	Resolver  *usecase.ResolveFontUseCase
	Pages     *pages.Registry
	Broadcast *usecase.BroadcastReloadUseCase
	Migrate   *usecase.MigrateSettingsUseCase
	Services  api.Services

	closer io.Closer
}

// OpenStore opens the key-value store selected by cfg.Backend.
// The returned closer may be nil.
func OpenStore(ctx context.Context, cfg config.StorageConfig) (port.KeyValueStore, io.Closer, error) {
	switch cfg.Backend {
	case config.StorageSQLite, "":
		store := sqlite.NewKVStore(cfg.SQLitePath)
		return store, store, nil
	case config.StorageRedis:
		store, err := redisstore.Connect(ctx, cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case config.StorageMemory:
		return kvstore.NewMemoryStore(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// New opens the configured store and wires the application on top of it.
// Missing settings keys are filled with their defaults.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	timer := NewStartupTimer()

	store, closer, err := OpenStore(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Storage.Backend, err)
	}
	timer.Mark("store")

	app := NewWithStore(cfg, store)
	app.closer = closer

	if _, err := app.Migrate.Execute(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	timer.Mark("migrate")

	timer.LogDebug(ctx)
	return app, nil
}

// NewWithStore wires the application over an already opened store.
func NewWithStore(cfg *config.Config, store port.KeyValueStore) *App {
	settings := kvstore.NewSettingsRepository(store)
	cache := kvstore.NewFontCacheRepository(store)

	fetcher := fetch.NewClient(FetchConfig(cfg.Fetch))
	resolver := usecase.NewResolveFontUseCase(cache, fetcher)
	validator := usecase.NewValidateFontURLUseCase(fetcher)

	app := &App{
		Config:    cfg,
		Store:     store,
		Settings:  settings,
		FontCache: cache,
		Fetcher:   fetcher,
		Resolver:  resolver,
		Migrate:   usecase.NewMigrateSettingsUseCase(settings),
	}

	app.Pages = pages.NewRegistry(app.EngineDeps(), EngineOptions(cfg.Engine), htmldoc.NewLoader(nil))
	app.Broadcast = usecase.NewBroadcastReloadUseCase(app.Pages)

	app.Services = api.Services{
		Settings:    usecase.NewManageSettingsUseCase(settings, validator),
		Exclusions:  usecase.NewManageExclusionsUseCase(settings),
		Presets:     usecase.NewManagePresetsUseCase(settings),
		ApplyPreset: usecase.NewApplyPresetUseCase(settings, app.Broadcast),
		Transfer:    usecase.NewTransferSettingsUseCase(settings),
		Validate:    validator,
		FontCache:   usecase.NewClearFontCacheUseCase(cache),
		Pages:       app.Pages,
	}
	return app
}

// EngineDeps returns the collaborators of every override engine.
func (a *App) EngineDeps() override.Deps {
	return override.Deps{Settings: a.Settings, Fonts: a.Resolver}
}

// ProxyConfig maps the proxy section onto proxy.Config.
func (a *App) ProxyConfig() proxy.Config {
	return proxy.Config{
		MITM:          a.Config.Proxy.MITM,
		SettleTimeout: time.Duration(a.Config.Proxy.SettleTimeoutMs) * time.Millisecond,
		Engine:        EngineOptions(a.Config.Engine),
	}
}

// Close unloads every page and closes the store.
func (a *App) Close() error {
	a.Pages.Shutdown()
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// EngineOptions converts millisecond settings into override.Options.
func EngineOptions(cfg config.EngineConfig) override.Options {
	return override.Options{
		Debounce:         time.Duration(cfg.DebounceMs) * time.Millisecond,
		WatchdogInterval: time.Duration(cfg.WatchdogIntervalMs) * time.Millisecond,
		WatchdogMaxTicks: cfg.WatchdogMaxTicks,
	}
}

// FetchConfig converts the fetch section into fetch.Config.
func FetchConfig(cfg config.FetchConfig) fetch.Config {
	return fetch.Config{
		Timeout:       time.Duration(cfg.TimeoutMs) * time.Millisecond,
		MaxBytes:      cfg.MaxFontBytes,
		RatePerSecond: cfg.RatePerSecond,
		Burst:         cfg.Burst,
		UserAgent:     cfg.UserAgent,
	}
}

// WithLogger returns ctx carrying a logger built from the logging section.
func WithLogger(ctx context.Context, cfg config.LoggingConfig) context.Context {
	return logging.WithContext(ctx, logging.NewFromConfigValues(cfg.Level, cfg.Format))
}
