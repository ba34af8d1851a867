package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

const (
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

// Config vem das variáveis de ambiente (docker-compose).
type Config struct {
	Port    int    `env:"SWEATERS_PORT" envDefault:"8000"`
	GinMode string `env:"SWEATERS_GIN_MODE" envDefault:"release"`

	StoreDriver string   `env:"SWEATERS_STORE_DRIVER" envDefault:"redis"`
	RedisURL    string   `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisAddrs  []string `env:"SWEATERS_REDIS_ADDRS" envSeparator:","`
	SQLitePath  string   `env:"SWEATERS_SQLITE_PATH" envDefault:"sweaters.db"`

	LogLevel string `env:"SWEATERS_LOG_LEVEL" envDefault:"info"`
	LogDir   string `env:"SWEATERS_LOG_DIR" envDefault:"logs"`

	OtelEndpoint string `env:"SWEATERS_OTEL_ENDPOINT"`
	OtelEnabled  bool   `env:"SWEATERS_OTEL_ENABLED" envDefault:"true"`

	RequestTimeout time.Duration `env:"SWEATERS_REQUEST_TIMEOUT" envDefault:"5s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverRedis, DriverSQLite:
	default:
		return fmt.Errorf("unknown store driver %q (want %s or %s)", c.StoreDriver, DriverRedis, DriverSQLite)
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("unknown gin mode %q (want %s, %s or %s)", c.GinMode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
