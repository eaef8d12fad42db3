package config

import (
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// DatabaseDSN is the path of the SQLite database holding the roster.
	DatabaseDSN string `env:"ROSTER_DB_DSN" envDefault:"./roster.db"`

	// HTTPAddr is the host:port the REST API listens on.
	HTTPAddr string `env:"ROSTER_HTTP_ADDR" envDefault:"127.0.0.1:3001"`

	MigrationsDir string `env:"ROSTER_MIGRATIONS_DIR" envDefault:"resources/migrations"`

	// RateLimit is the number of requests per second the REST API accepts
	// across all clients, RateBurst is how many it accepts at once.
	RateLimit float64 `env:"ROSTER_RATE_LIMIT" envDefault:"20"`
	RateBurst int     `env:"ROSTER_RATE_BURST" envDefault:"40"`

	// Sentry is disabled when SentryDSN is empty.
	SentryDSN   string `env:"ROSTER_SENTRY_DSN"`
	Environment string `env:"ROSTER_ENVIRONMENT" envDefault:"development"`
}

// Load reads the configuration from the environment, a .env file in the
// working directory is loaded first if present. Variables already set in the
// environment take precedence over the .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Print("debug: loaded .env")
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("unable to parse env: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate returns all configuration problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("ROSTER_DB_DSN cannot be empty"))
	}

	if _, _, err := net.SplitHostPort(c.HTTPAddr); err != nil {
		errs = append(errs, fmt.Errorf("ROSTER_HTTP_ADDR must be a host:port pair: %w", err))
	}

	if c.MigrationsDir == "" {
		errs = append(errs, errors.New("ROSTER_MIGRATIONS_DIR cannot be empty"))
	}

	if c.RateLimit <= 0 {
		errs = append(errs, fmt.Errorf("ROSTER_RATE_LIMIT must be positive, got %v", c.RateLimit))
	}

	if c.RateBurst < 1 {
		errs = append(errs, fmt.Errorf("ROSTER_RATE_BURST must be at least 1, got %d", c.RateBurst))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  %w", errors.Join(errs...))
	}

	return nil
}
