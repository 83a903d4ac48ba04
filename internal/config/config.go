// Package config loads application settings from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultDBPath is where the snippet database lives unless overridden.
const DefaultDBPath = "data/snippets.db"

// Config holds the application configuration.
type Config struct {
	DBPath string
}

// Load reads an optional .env file from the working directory, then the
// process environment. A missing .env is not an error.
//
// SNIPDESK_DB overrides the database file path, e.g.
// SNIPDESK_DB=/home/me/.local/share/snipdesk/snippets.db
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{DBPath: DefaultDBPath}
	if v := os.Getenv("SNIPDESK_DB"); v != "" {
		cfg.DBPath = v
	}
	return cfg
}
