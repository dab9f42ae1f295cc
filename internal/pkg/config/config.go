package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB, secrets, upstream URLs)
// - default: Values common across all environments (timeouts, batch sizes)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Catalog CatalogConfig
	Feed    FeedConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02T15:04:05.000Z07:00"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// CatalogConfig points at the external course directory. Lookups are
// idempotent GETs, so a small bounded retry is applied on transient failures.
type CatalogConfig struct {
	BaseURL       string        `envconfig:"CATALOG_BASE_URL" required:"true"`
	Timeout       time.Duration `envconfig:"CATALOG_TIMEOUT" default:"5s"`
	Retries       int           `envconfig:"CATALOG_RETRIES" default:"2"`
	EnrichWorkers int           `envconfig:"CATALOG_ENRICH_WORKERS" default:"4"`
}

// FeedConfig configures the purchase change feed (Kafka).
type FeedConfig struct {
	Enabled        bool          `envconfig:"FEED_ENABLED" default:"true"`
	Brokers        []string      `envconfig:"FEED_BROKERS" default:"localhost:9092"`
	Topic          string        `envconfig:"FEED_TOPIC" default:"compras.changes"`
	GroupID        string        `envconfig:"FEED_GROUP_ID" default:"compras-notifier"`
	PublishTimeout time.Duration `envconfig:"FEED_PUBLISH_TIMEOUT" default:"2s"`
	BatchSize      int           `envconfig:"FEED_BATCH_SIZE" default:"32"`
	BatchWindow    time.Duration `envconfig:"FEED_BATCH_WINDOW" default:"250ms"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}
