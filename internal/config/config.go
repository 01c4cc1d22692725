// Package config loads server configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration read from the environment
type Config struct {
	// Port is the HTTP listen port
	Port int `env:"PORT" envDefault:"8080"`

	// HTTP timeouts, as Go duration strings ("15s", "1m")
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// JWTSecret signs both access and refresh tokens
	JWTSecret string `env:"JWT_SECRET"`

	// JWTExpiresIn is the access-token TTL as a duration string:
	// a bare number of seconds or "<n>s", "<n>m", "<n>h", "<n>d".
	// Unparseable values fall back to one hour.
	JWTExpiresIn string `env:"JWT_EXPIRES_IN"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`

	// RedisURL is the Redis connection URL (required for redis storage)
	RedisURL string `env:"REDIS_URL"`
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return &cfg, nil
}
