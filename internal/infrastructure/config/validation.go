package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateEngine(config)...)
	validationErrors = append(validationErrors, validateFetch(config)...)
	validationErrors = append(validationErrors, validateListen("server.listen", config.Server.Listen)...)
	validationErrors = append(validationErrors, validateListen("proxy.listen", config.Proxy.Listen)...)
	if config.Proxy.SettleTimeoutMs < 1 {
		validationErrors = append(validationErrors, "proxy.settle_timeout_ms must be at least 1")
	}

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	var validationErrors []string
	switch config.Storage.Backend {
	case StorageSQLite, StorageMemory:
	case StorageRedis:
		if config.Storage.RedisURL == "" {
			validationErrors = append(validationErrors, "storage.redis_url is required when storage.backend is redis")
		} else if u, err := url.Parse(config.Storage.RedisURL); err != nil || (u.Scheme != "redis" && u.Scheme != "rediss") {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"storage.redis_url must be a redis:// or rediss:// URL (got: %s)", config.Storage.RedisURL))
		}
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"storage.backend must be one of: sqlite, redis, memory (got: %s)",
			config.Storage.Backend,
		))
	}
	return validationErrors
}

func validateEngine(config *Config) []string {
	var validationErrors []string
	if config.Engine.DebounceMs < 1 {
		validationErrors = append(validationErrors, "engine.debounce_ms must be at least 1")
	}
	if config.Engine.WatchdogIntervalMs < 1 {
		validationErrors = append(validationErrors, "engine.watchdog_interval_ms must be at least 1")
	}
	if config.Engine.WatchdogMaxTicks < -1 {
		validationErrors = append(validationErrors, "engine.watchdog_max_ticks must be -1 (disabled) or non-negative")
	}
	return validationErrors
}

func validateFetch(config *Config) []string {
	var validationErrors []string
	if config.Fetch.TimeoutMs < 1 {
		validationErrors = append(validationErrors, "fetch.timeout_ms must be at least 1")
	}
	if config.Fetch.MaxFontBytes < 1 {
		validationErrors = append(validationErrors, "fetch.max_font_bytes must be at least 1")
	}
	if config.Fetch.RatePerSecond < 0 {
		validationErrors = append(validationErrors, "fetch.rate_per_second must be non-negative (0 disables limiting)")
	}
	if config.Fetch.Burst < 0 {
		validationErrors = append(validationErrors, "fetch.burst must be non-negative")
	}
	return validationErrors
}

func validateListen(key, addr string) []string {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return []string{fmt.Sprintf("%s must be host:port (got: %q)", key, addr)}
	}
	return nil
}
