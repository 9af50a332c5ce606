// Package config loads server configuration from a .env file (when
// present) and environment variables, with sensible local defaults.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string // listen address for the API server
	ArchivePath string // SQLite archive path; ":memory:" for ephemeral
	Env         string // "dev" switches to human-friendly console logs
	Seed        bool   // load sample rooms and guests on startup
}

func Load() Config {
	// A missing .env is fine; env vars and defaults still apply.
	_ = godotenv.Load()

	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		ArchivePath: getenv("ARCHIVE_DB", "royalstay.db"),
		Env:         getenv("APP_ENV", "dev"),
		Seed:        getenv("SEED", "true") == "true",
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
