package config

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultRedisPrefix = "fontify:"

	// Engine defaults
	defaultDebounceMs         = 100
	defaultWatchdogIntervalMs = 5000
	defaultWatchdogMaxTicks   = 10

	// Fetch defaults
	defaultFetchTimeoutMs = 15000
	defaultMaxFontBytes   = 10 << 20 // 10 MiB
	defaultRatePerSecond  = 10.0
	defaultBurst          = 5
	defaultUserAgent      = "fontify/1.0"

	defaultServerListen    = "127.0.0.1:7410"
	defaultProxyListen     = "127.0.0.1:7411"
	defaultSettleTimeoutMs = 3000
)

// DefaultConfig returns the default configuration values for fontify.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Storage: StorageConfig{
			Backend: StorageSQLite,
			// SQLitePath is set dynamically in Load()
			RedisPrefix: defaultRedisPrefix,
		},
		Engine: EngineConfig{
			DebounceMs:         defaultDebounceMs,
			WatchdogIntervalMs: defaultWatchdogIntervalMs,
			WatchdogMaxTicks:   defaultWatchdogMaxTicks,
		},
		Fetch: FetchConfig{
			TimeoutMs:     defaultFetchTimeoutMs,
			MaxFontBytes:  defaultMaxFontBytes,
			RatePerSecond: defaultRatePerSecond,
			Burst:         defaultBurst,
			UserAgent:     defaultUserAgent,
		},
		Server: ServerConfig{Listen: defaultServerListen},
		Proxy: ProxyConfig{
			Listen:          defaultProxyListen,
			SettleTimeoutMs: defaultSettleTimeoutMs,
		},
	}
}
