// Package config loads client configuration from the environment.
package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/genesi-finance/genesi-client/internal/sessionstore"
)

// Config is the full environment contract of the client.
type Config struct {
	// APIURL is the backend base URL, e.g. https://api.genesi.app.
	APIURL string `env:"GENESI_API_URL"`
	// ConfigDir overrides where the session file lives.
	ConfigDir string `env:"GENESI_CONFIG_DIR"`
	// Timeout bounds every remote request.
	Timeout time.Duration `env:"GENESI_TIMEOUT" envDefault:"30s"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.APIURL == "" {
		return nil, errors.New("GENESI_API_URL is required")
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = sessionstore.DefaultDir()
	}
	return &cfg, nil
}
