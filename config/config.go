package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Redis     RedisConfig     `json:"redis"`
	Search    SearchConfig    `json:"search"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Auth      AuthConfig      `json:"auth"`
	Render    RenderConfig    `json:"render"`
	Logging   LoggingConfig   `json:"logging"`
	OTel      OTelConfig      `json:"otel"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"8000"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

type DatabaseConfig struct {
	URL               string        `json:"-" env:"DATABASE_URL"`
	Host              string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port              int           `json:"port" env:"DB_PORT" default:"5432"`
	User              string        `json:"user" env:"DB_USER" default:"blog"`
	Password          string        `json:"-" env:"DB_PASSWORD"`
	PasswordFile      string        `json:"-" env:"DB_PASSWORD_FILE"`
	Name              string        `json:"name" env:"DB_NAME" default:"blog"`
	SSLMode           string        `json:"sslmode" env:"DB_SSLMODE" default:"disable"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"10"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"10s"`
}

// RedisConfig enables the load-more fragment cache when URL is set.
type RedisConfig struct {
	URL         string        `json:"-" env:"REDIS_URL"`
	FragmentTTL time.Duration `json:"fragment_ttl" env:"FRAGMENT_CACHE_TTL" default:"60s"`
}

// SearchConfig enables the Meilisearch engine and index job when Host is set.
type SearchConfig struct {
	Host          string        `json:"host" env:"MEILISEARCH_HOST"`
	APIKey        string        `json:"-" env:"MEILISEARCH_API_KEY"`
	Index         string        `json:"index" env:"MEILISEARCH_INDEX" default:"posts"`
	IndexInterval time.Duration `json:"index_interval" env:"SEARCH_INDEX_INTERVAL" default:"1m"`
	BatchSize     int           `json:"batch_size" env:"SEARCH_INDEX_BATCH_SIZE" default:"200"`
}

type RateLimitConfig struct {
	LoadMoreRPS   float64 `json:"load_more_rps" env:"RATE_LIMIT_LOAD_MORE_RPS" default:"5"`
	LoadMoreBurst int     `json:"load_more_burst" env:"RATE_LIMIT_LOAD_MORE_BURST" default:"10"`
}

type AuthConfig struct {
	JWTSecret     string `json:"-" env:"JWT_SECRET"`
	JWTSecretFile string `json:"-" env:"JWT_SECRET_FILE"`
	JWTIssuer     string `json:"jwt_issuer" env:"JWT_ISSUER" default:"simple-blog"`
}

type RenderConfig struct {
	SanitizeCacheSize int `json:"sanitize_cache_size" env:"RENDER_SANITIZE_CACHE_SIZE" default:"512"`
}

type LoggingConfig struct {
	Level string `json:"level" env:"LOG_LEVEL" default:"info"`
}

type OTelConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"simple-blog"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"0.0.0"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	OTLPEndpoint   string  `json:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"0.1"`
}

// NewConfig loads the configuration from the environment, reading a .env file
// first when one exists.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return Load()
}

// Load builds the configuration from the current environment only.
func Load() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	config.Database.Password = readSecretFile(config.Database.PasswordFile, config.Database.Password)
	config.Auth.JWTSecret = readSecretFile(config.Auth.JWTSecretFile, config.Auth.JWTSecret)

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// readSecretFile returns the trimmed content of path, or fallback when the file is unset or unreadable.
func readSecretFile(path, fallback string) string {
	if path == "" {
		return fallback
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	return strings.TrimSpace(string(content))
}
