package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/edyapups/Beneburg-Archived/internal/flagx"
)

var knownFlags = []string{"-s", "-a", "-p", "-d", "-l", "-t"}

// parseFlags overlays cfg with the short flags listed in the package doc.
// Arguments it does not own (such as -c) are filtered out beforehand.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("userdir", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Schema, "s", cfg.Schema, "backend URL schema (http or https)")
	fs.StringVar(&cfg.Host, "a", cfg.Host, "backend host and port")
	fs.StringVar(&cfg.APIPrefix, "p", cfg.APIPrefix, "API path prefix")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.Token, "t", cfg.Token, "bearer token for this session, not persisted")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
