package config

import (
	"fmt"
	"net/url"
	"strings"
)

func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}
	if err := validateRedisConfig(&config.Redis); err != nil {
		return fmt.Errorf("redis config validation failed: %w", err)
	}
	if err := validateSearchConfig(&config.Search); err != nil {
		return fmt.Errorf("search config validation failed: %w", err)
	}
	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}
	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}
	if config.Render.SanitizeCacheSize < 1 {
		return fmt.Errorf("render config validation failed: sanitize cache size must be at least 1, got %d", config.Render.SanitizeCacheSize)
	}
	if config.OTel.SampleRatio < 0 || config.OTel.SampleRatio > 1 {
		return fmt.Errorf("otel config validation failed: sample ratio must be within [0,1], got %v", config.OTel.SampleRatio)
	}
	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}
	if config.ReadTimeout <= 0 || config.WriteTimeout <= 0 || config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive")
	}
	if config.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %v", config.ShutdownTimeout)
	}
	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}
	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}
	if config.URL == "" && (config.Host == "" || config.Name == "") {
		return fmt.Errorf("either DATABASE_URL or DB_HOST and DB_NAME must be set")
	}
	return nil
}

func validateRedisConfig(config *RedisConfig) error {
	if config.URL == "" {
		return nil
	}
	if _, err := url.Parse(config.URL); err != nil {
		return fmt.Errorf("invalid redis url: %w", err)
	}
	if config.FragmentTTL <= 0 {
		return fmt.Errorf("fragment ttl must be positive, got %v", config.FragmentTTL)
	}
	return nil
}

func validateSearchConfig(config *SearchConfig) error {
	if config.Host == "" {
		return nil
	}
	if config.Index == "" {
		return fmt.Errorf("search index name is required")
	}
	if config.IndexInterval <= 0 {
		return fmt.Errorf("index interval must be positive, got %v", config.IndexInterval)
	}
	if config.BatchSize < 1 || config.BatchSize > 1000 {
		return fmt.Errorf("batch size must be between 1 and 1000, got %d", config.BatchSize)
	}
	return nil
}

func validateRateLimitConfig(config *RateLimitConfig) error {
	if config.LoadMoreRPS <= 0 {
		return fmt.Errorf("load more rps must be positive, got %v", config.LoadMoreRPS)
	}
	if config.LoadMoreBurst < 1 {
		return fmt.Errorf("load more burst must be at least 1, got %d", config.LoadMoreBurst)
	}
	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level: %s", config.Level)
	}
}
