package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
)

// Config holds runtime settings for the user directory CLI.
type Config struct {
	Schema    string `env:"USERDIR_SCHEMA"`
	Host      string `env:"USERDIR_HOST"`
	APIPrefix string `env:"USERDIR_API_PREFIX"`
	DBPath    string `env:"USERDIR_DB"`
	LogLevel  string `env:"USERDIR_LOG_LEVEL"`

	// Token, when set, is used for this session instead of the stored one.
	Token string `env:"USERDIR_TOKEN"`
}

// LoadDefaults populates c with the local development setup.
func (c *Config) LoadDefaults() {
	c.Schema = "http"
	c.Host = "localhost:8080"
	c.APIPrefix = "/api"
	c.DBPath = "userdir.db"
	c.LogLevel = "info"
}

// BaseURL is the root every API path is resolved against,
// e.g. "http://localhost:8080/api".
func (c *Config) BaseURL() string {
	u := url.URL{Scheme: c.Schema, Host: c.Host, Path: c.APIPrefix}
	return u.String()
}

// Validate rejects settings the client cannot work with.
func (c *Config) Validate() error {
	if c.Schema != "http" && c.Schema != "https" {
		return fmt.Errorf("unsupported schema %q", c.Schema)
	}
	if c.Host == "" {
		return errors.New("empty backend host")
	}
	if c.DBPath == "" {
		return errors.New("empty database path")
	}
	return nil
}

// LoadConfig builds a Config from defaults, environment, JSON file and
// flags found in os.Args.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load is LoadConfig over an explicit argument list.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
