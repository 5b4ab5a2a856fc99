package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all service configuration, populated from the environment.
// A .env file in the working directory is loaded first if present.
type Config struct {
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"8080"`

	// StorageType selects the backend: memory, redis, or postgres
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:""`

	// SessionTTL bounds session lifetime; 0 keeps sessions until logout
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"0"`

	// StaticDir is the built frontend; not mounted when the dir is absent
	StaticDir string `env:"STATIC_DIR" envDefault:"frontend_dist"`

	// SeedDemoData populates demo accounts and scores into an empty store
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"true"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from .env (if present) and the environment
func Load() (*Config, error) {
	// Missing .env is the normal case, not an error
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
