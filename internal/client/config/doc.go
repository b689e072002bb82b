// Package config loads runtime configuration for the user directory CLI.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, if any, and the process
//     environment (see parseEnv).
//  3. Optional JSON file selected with -c or -config (see parseJSON).
//  4. Command-line flags (see parseFlags).
//
// Supported flags
//
//	-s string   URL schema of the backend, http or https
//	-a string   backend host[:port]
//	-p string   API path prefix
//	-d string   path of the local SQLite database
//	-l string   log level: debug, info, warn, error
//	-t string   bearer token for this session (read-only, not persisted)
//
// # Environment
//
//	USERDIR_SCHEMA, USERDIR_HOST, USERDIR_API_PREFIX,
//	USERDIR_DB, USERDIR_LOG_LEVEL, USERDIR_TOKEN
//
// # JSON schema
//
//	{
//	  "schema": "https",
//	  "host": "directory.example.org",
//	  "api_prefix": "/api",
//	  "db_path": "/var/lib/userdir/client.db",
//	  "log_level": "debug"
//	}
//
// Empty or missing JSON fields leave earlier values untouched.
package config
