// Package config loads the fontify configuration file and environment.
package config

// Config represents the complete configuration for fontify.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Storage selects where settings and the font cache are persisted.
	Storage StorageConfig `mapstructure:"storage" yaml:"storage" toml:"storage" json:"storage"`
	// Engine tunes the per-page override maintenance.
	Engine EngineConfig `mapstructure:"engine" yaml:"engine" toml:"engine" json:"engine"`
	// Fetch controls font downloads and URL probes.
	Fetch  FetchConfig  `mapstructure:"fetch" yaml:"fetch" toml:"fetch" json:"fetch"`
	Server ServerConfig `mapstructure:"server" yaml:"server" toml:"server" json:"server"`
	Proxy  ProxyConfig  `mapstructure:"proxy" yaml:"proxy" toml:"proxy" json:"proxy"`
}

// LoggingConfig holds logging output settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// StorageBackend names a key-value store implementation.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageRedis  StorageBackend = "redis"
	StorageMemory StorageBackend = "memory"
)

// StorageConfig selects and configures the settings store.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" yaml:"backend" toml:"backend" json:"backend" jsonschema:"enum=sqlite,enum=redis,enum=memory"`
	// SQLitePath defaults to $XDG_DATA_HOME/fontify/fontify.sqlite.
	SQLitePath  string `mapstructure:"sqlite_path" yaml:"sqlite_path" toml:"sqlite_path" json:"sqlite_path"`
	RedisURL    string `mapstructure:"redis_url" yaml:"redis_url" toml:"redis_url" json:"redis_url"`
	RedisPrefix string `mapstructure:"redis_prefix" yaml:"redis_prefix" toml:"redis_prefix" json:"redis_prefix"`
}

// EngineConfig mirrors override.Options in milliseconds.
type EngineConfig struct {
	DebounceMs         int `mapstructure:"debounce_ms" yaml:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" jsonschema:"minimum=1"`
	WatchdogIntervalMs int `mapstructure:"watchdog_interval_ms" yaml:"watchdog_interval_ms" toml:"watchdog_interval_ms" json:"watchdog_interval_ms" jsonschema:"minimum=1"`
	// WatchdogMaxTicks bounds the dominance checks per page. -1 disables them.
	WatchdogMaxTicks int `mapstructure:"watchdog_max_ticks" yaml:"watchdog_max_ticks" toml:"watchdog_max_ticks" json:"watchdog_max_ticks" jsonschema:"minimum=-1"`
}

// FetchConfig controls the HTTP client used for fonts.
type FetchConfig struct {
	TimeoutMs     int     `mapstructure:"timeout_ms" yaml:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" jsonschema:"minimum=1"`
	MaxFontBytes  int64   `mapstructure:"max_font_bytes" yaml:"max_font_bytes" toml:"max_font_bytes" json:"max_font_bytes" jsonschema:"minimum=1"`
	RatePerSecond float64 `mapstructure:"rate_per_second" yaml:"rate_per_second" toml:"rate_per_second" json:"rate_per_second" jsonschema:"minimum=0"`
	Burst         int     `mapstructure:"burst" yaml:"burst" toml:"burst" json:"burst" jsonschema:"minimum=0"`
	UserAgent     string  `mapstructure:"user_agent" yaml:"user_agent" toml:"user_agent" json:"user_agent"`
}

// ServerConfig configures the control API.
type ServerConfig struct {
	Listen string `mapstructure:"listen" yaml:"listen" toml:"listen" json:"listen"`
}

// ProxyConfig configures the rewriting proxy.
type ProxyConfig struct {
	Listen string `mapstructure:"listen" yaml:"listen" toml:"listen" json:"listen"`
	// MITM intercepts HTTPS with the built-in certificate authority.
	MITM            bool `mapstructure:"mitm" yaml:"mitm" toml:"mitm" json:"mitm"`
	SettleTimeoutMs int  `mapstructure:"settle_timeout_ms" yaml:"settle_timeout_ms" toml:"settle_timeout_ms" json:"settle_timeout_ms" jsonschema:"minimum=1"`
}
