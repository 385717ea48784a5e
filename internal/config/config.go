package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	GRPC     GRPC     `envPrefix:"GRPC_"`
	Database Database `envPrefix:"DATABASE_"`
	Session  Session  `envPrefix:"SESSION_"`
	Password Password `envPrefix:"PASSWORD_"`
}

// GRPC contains gRPC server parameters.
type GRPC struct {
	Port               string `env:"PORT" envDefault:"50051"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains database connection parameters.
// An empty DSN selects the in-memory stores.
type Database struct {
	DSN                 string        `env:"DSN"`
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL" envDefault:"15s"`
}

// Session contains session token parameters.
type Session struct {
	Secret string        `env:"SECRET,required"`
	TTL    time.Duration `env:"TTL" envDefault:"720h"`
}

// Password contains password hashing parameters.
type Password struct {
	Cost int `env:"COST" envDefault:"10"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Session.Secret == "" {
		return errors.New("session secret must not be empty")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Database.HealthCheckInterval <= 0 {
		return fmt.Errorf("database health check interval must be positive, got %s", c.Database.HealthCheckInterval)
	}
	return nil
}
