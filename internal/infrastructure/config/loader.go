package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (FONTIFY_STORAGE_BACKEND, ...).
const EnvPrefix = "FONTIFY"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configFile     string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a configuration manager for configFile.
// An empty path selects $XDG_CONFIG_HOME/fontify/config.toml.
func NewManager(configFile string) (*Manager, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config file: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short aliases on top of the FONTIFY_<SECTION>_<KEY> names.
	bindings := map[string]string{
		"logging.level":     "FONTIFY_LOG_LEVEL",
		"logging.format":    "FONTIFY_LOG_FORMAT",
		"storage.redis_url": "FONTIFY_REDIS_URL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "FONTIFY_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load reads .env (when present), the config file and the environment.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := loadDotEnv(".env"); err != nil {
		return err
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := finalize(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// loadDotEnv loads path into the process environment without overriding
// variables that are already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func (m *Manager) readConfigFile() error {
	if _, err := os.Stat(m.configFile); errors.Is(err, fs.ErrNotExist) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				createErr,
			)
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

// finalize fills dynamic defaults, normalizes and validates config.
func finalize(config *Config) error {
	if config.Storage.SQLitePath == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Storage.SQLitePath = dbPath
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	config.Storage.Backend = StorageBackend(strings.ToLower(strings.TrimSpace(string(config.Storage.Backend))))
	if config.Storage.Backend == "" {
		config.Storage.Backend = StorageSQLite
	}
	config.Storage.RedisURL = strings.TrimSpace(config.Storage.RedisURL)
	if config.Storage.RedisPrefix == "" {
		config.Storage.RedisPrefix = defaultRedisPrefix
	}

	config.Server.Listen = strings.TrimSpace(config.Server.Listen)
	config.Proxy.Listen = strings.TrimSpace(config.Proxy.Listen)
	if strings.TrimSpace(config.Fetch.UserAgent) == "" {
		config.Fetch.UserAgent = defaultUserAgent
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	saved := *cfg
	if err := finalize(&saved); err != nil {
		return err
	}
	if err := WriteConfigOrdered(&saved, m.configFile); err != nil {
		return err
	}

	// The watcher would otherwise reload what we just wrote.
	m.skipNextReload = m.watching
	m.config = &saved
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	return WriteConfigOrdered(DefaultConfig(), m.configFile)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	// storage.sqlite_path is set dynamically in finalize()
	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.sqlite_path", "")
	m.viper.SetDefault("storage.redis_url", defaults.Storage.RedisURL)
	m.viper.SetDefault("storage.redis_prefix", defaults.Storage.RedisPrefix)

	m.viper.SetDefault("engine.debounce_ms", defaults.Engine.DebounceMs)
	m.viper.SetDefault("engine.watchdog_interval_ms", defaults.Engine.WatchdogIntervalMs)
	m.viper.SetDefault("engine.watchdog_max_ticks", defaults.Engine.WatchdogMaxTicks)

	m.viper.SetDefault("fetch.timeout_ms", defaults.Fetch.TimeoutMs)
	m.viper.SetDefault("fetch.max_font_bytes", defaults.Fetch.MaxFontBytes)
	m.viper.SetDefault("fetch.rate_per_second", defaults.Fetch.RatePerSecond)
	m.viper.SetDefault("fetch.burst", defaults.Fetch.Burst)
	m.viper.SetDefault("fetch.user_agent", defaults.Fetch.UserAgent)

	m.viper.SetDefault("server.listen", defaults.Server.Listen)

	m.viper.SetDefault("proxy.listen", defaults.Proxy.Listen)
	m.viper.SetDefault("proxy.mitm", defaults.Proxy.MITM)
	m.viper.SetDefault("proxy.settle_timeout_ms", defaults.Proxy.SettleTimeoutMs)
}
