package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/edyapups/Beneburg-Archived/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling.
type JSONConfig struct {
	Schema    string `json:"schema"`
	Host      string `json:"host"`
	APIPrefix string `json:"api_prefix"`
	DBPath    string `json:"db_path"`
	LogLevel  string `json:"log_level"`
}

// parseJSON overlays cfg with the file named by -c/-config in args.
// Without either flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	overlay(&cfg.Schema, jc.Schema)
	overlay(&cfg.Host, jc.Host)
	overlay(&cfg.APIPrefix, jc.APIPrefix)
	overlay(&cfg.DBPath, jc.DBPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
