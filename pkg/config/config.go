package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the dashboard service. Everything
// comes from environment variables; the Cosmic keys are secrets and have
// no defaults.
type Config struct {
	BindAddr string `env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `env:"PORT" env-default:"3000"`

	Cosmic CosmicConfig
}

// CosmicConfig holds the bucket credentials for the hosted CMS.
type CosmicConfig struct {
	BucketSlug string `env:"COSMIC_BUCKET_SLUG"`
	ReadKey    string `env:"COSMIC_READ_KEY"`
	WriteKey   string `env:"COSMIC_WRITE_KEY"`
	BaseURL    string `env:"COSMIC_API_URL" env-default:"https://api.cosmicjs.com/v3"`
}

// Load reads configuration from the environment and validates that the
// bucket credentials are present.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if cfg.Cosmic.BucketSlug == "" {
		return nil, fmt.Errorf("COSMIC_BUCKET_SLUG is required")
	}
	if cfg.Cosmic.ReadKey == "" {
		return nil, fmt.Errorf("COSMIC_READ_KEY is required")
	}
	if cfg.Cosmic.WriteKey == "" {
		return nil, fmt.Errorf("COSMIC_WRITE_KEY is required")
	}

	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.BindAddr + ":" + c.Port
}
