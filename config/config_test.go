package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	clearTestEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Database.MaxConnections)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 60*time.Second, cfg.Redis.FragmentTTL)
	assert.Empty(t, cfg.Search.Host)
	assert.Equal(t, "posts", cfg.Search.Index)
	assert.Equal(t, 5.0, cfg.RateLimit.LoadMoreRPS)
	assert.Equal(t, 10, cfg.RateLimit.LoadMoreBurst)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.OTel.Enabled)
	assert.Equal(t, 0.1, cfg.OTel.SampleRatio)
	assert.Equal(t, 512, cfg.Render.SanitizeCacheSize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearTestEnv(t)
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("FRAGMENT_CACHE_TTL", "2m")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("RATE_LIMIT_LOAD_MORE_RPS", "2.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 2*time.Minute, cfg.Redis.FragmentTTL)
	assert.True(t, cfg.OTel.Enabled)
	assert.Equal(t, 2.5, cfg.RateLimit.LoadMoreRPS)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port not a number", key: "SERVER_PORT", val: "abc"},
		{name: "port out of range", key: "SERVER_PORT", val: "70000"},
		{name: "bad duration", key: "SERVER_READ_TIMEOUT", val: "soon"},
		{name: "bad bool", key: "OTEL_ENABLED", val: "maybe"},
		{name: "bad log level", key: "LOG_LEVEL", val: "loud"},
		{name: "zero burst", key: "RATE_LIMIT_LOAD_MORE_BURST", val: "0"},
		{name: "sample ratio above one", key: "OTEL_TRACE_SAMPLE_RATIO", val: "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_SearchValidatedOnlyWhenEnabled(t *testing.T) {
	clearTestEnv(t)
	t.Setenv("SEARCH_INDEX_BATCH_SIZE", "0")

	_, err := Load()
	require.NoError(t, err)

	t.Setenv("MEILISEARCH_HOST", "http://localhost:7700")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_SecretFiles(t *testing.T) {
	clearTestEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "jwt")
	require.NoError(t, os.WriteFile(path, []byte("s3cret\n"), 0o600))

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_SECRET_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)

	t.Setenv("JWT_SECRET_FILE", filepath.Join(dir, "missing"))
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "blog", Password: "p@ss", Name: "blog", SSLMode: "disable"}
	assert.Equal(t, "postgres://blog:p%40ss@db:5432/blog?sslmode=disable", c.DSN())

	c.URL = "postgres://other"
	assert.Equal(t, "postgres://other", c.DSN())
}

func clearTestEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_PASSWORD_FILE", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_CONNECTIONS", "DB_CONNECTION_TIMEOUT",
		"REDIS_URL", "FRAGMENT_CACHE_TTL",
		"MEILISEARCH_HOST", "MEILISEARCH_API_KEY", "MEILISEARCH_INDEX", "SEARCH_INDEX_INTERVAL",
		"SEARCH_INDEX_BATCH_SIZE",
		"RATE_LIMIT_LOAD_MORE_RPS", "RATE_LIMIT_LOAD_MORE_BURST",
		"JWT_SECRET", "JWT_SECRET_FILE", "JWT_ISSUER",
		"RENDER_SANITIZE_CACHE_SIZE", "LOG_LEVEL",
		"OTEL_ENABLED", "OTEL_SERVICE_NAME", "SERVICE_VERSION", "DEPLOYMENT_ENV",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_TRACE_SAMPLE_RATIO",
	} {
		t.Setenv(key, "")
	}
}
