package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	Port     string   `env:"PORT" envDefault:"3000"`
	GinMode  string   `env:"GIN_MODE" envDefault:"debug"`
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	Database Database `envPrefix:"DB_"`
}

// Database contains database connection parameters.
type Database struct {
	Driver         string `env:"DRIVER" envDefault:"mysql"`
	Host           string `env:"HOST" envDefault:"localhost"`
	Port           string `env:"PORT" envDefault:"3306"`
	User           string `env:"USER" envDefault:"exercise"`
	Password       string `env:"PASSWORD" envDefault:"exercise"`
	Name           string `env:"NAME" envDefault:"exercise_tracker"`
	TimeoutSeconds int    `env:"TIMEOUT" envDefault:"5"`
}

// Timeout returns the bound applied to every store call.
func (d Database) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
