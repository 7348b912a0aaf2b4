// Package config loads CLI defaults from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the defaults for kmagrid flags.
type Config struct {
	Format  string  `env:"KMAGRID_FORMAT" envDefault:"png"`
	Quality int     `env:"KMAGRID_QUALITY" envDefault:"90"`
	Scale   int     `env:"KMAGRID_SCALE" envDefault:"4"`
	Step    float64 `env:"KMAGRID_STEP" envDefault:"1"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config populated from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Quality < 1 || cfg.Quality > 100 {
		return Config{}, fmt.Errorf("KMAGRID_QUALITY %d outside 1-100", cfg.Quality)
	}
	if cfg.Scale < 1 {
		return Config{}, fmt.Errorf("KMAGRID_SCALE %d must be positive", cfg.Scale)
	}
	if cfg.Step <= 0 {
		return Config{}, fmt.Errorf("KMAGRID_STEP %v must be positive", cfg.Step)
	}
	return cfg, nil
}
