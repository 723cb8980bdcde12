// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// Environment is "development" or "production". Defaults to "development".
	// In production, session cookies are marked Secure (HTTPS only).
	Environment string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// SessionAuthKey signs the session cookie (HMAC). Required.
	// Must be 32 or 64 bytes; shared with the external identity provider.
	SessionAuthKey string

	// SessionEncKey encrypts the session cookie payload (AES).
	// Optional — when empty, cookies are signed but not encrypted.
	SessionEncKey string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (Next.js dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// RunMigrations applies pending goose migrations at startup when true.
	// Defaults to false; set RUN_MIGRATIONS=true to enable.
	RunMigrations bool
}

// IsProduction reports whether the server runs in production mode.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		SessionEncKey: os.Getenv("SESSION_ENC_KEY"),
		RunMigrations: getEnv("RUN_MIGRATIONS", "false") == "true",
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.SessionAuthKey = os.Getenv("SESSION_AUTH_KEY")
	if cfg.SessionAuthKey == "" {
		missing = append(missing, "SESSION_AUTH_KEY")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
