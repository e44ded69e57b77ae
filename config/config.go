package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"property-estimator/estimator"
)

// Config holds all application configuration
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Empty address selects the in-memory cache
	RedisAddr       string        `env:"REDIS_ADDR"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	CacheMaxEntries int           `env:"CACHE_MAX_ENTRIES" envDefault:"10000"`

	RateLimit RateLimitConfig
	Estimator EstimatorConfig

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type RateLimitConfig struct {
	Capacity int           `env:"RATE_LIMIT_CAPACITY" envDefault:"60"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// EstimatorConfig holds the widget constants that used to be hard-coded.
type EstimatorConfig struct {
	DefaultAnnualRatePct   float64 `env:"DEFAULT_ANNUAL_RATE_PCT" envDefault:"6.14"`
	DefaultTermYears       int     `env:"DEFAULT_TERM_YEARS" envDefault:"30"`
	DefaultAppreciationPct float64 `env:"DEFAULT_APPRECIATION_PCT" envDefault:"5.2"`
}

func (e EstimatorConfig) Estimator() estimator.Config {
	return estimator.Config{
		DefaultAnnualRatePct:   e.DefaultAnnualRatePct,
		DefaultTermYears:       e.DefaultTermYears,
		DefaultAppreciationPct: e.DefaultAppreciationPct,
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// Load reads envFile when it exists, then parses the environment. A missing
// env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("RATE_LIMIT_CAPACITY must be positive, got %d", c.RateLimit.Capacity)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimit.Window)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	if c.CacheMaxEntries <= 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be positive, got %d", c.CacheMaxEntries)
	}
	if err := c.Estimator.Estimator().Validate(); err != nil {
		return fmt.Errorf("estimator defaults: %w", err)
	}
	return nil
}
