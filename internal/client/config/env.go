package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with USERDIR_* variables. A .env file in the
// working directory is loaded first; variables already present in the
// environment take priority over it. A missing .env is not an error.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
