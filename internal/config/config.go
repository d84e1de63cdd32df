// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DataDir is the directory where the JSON data files live.
	// Defaults to "./data"; it is created on first write if absent.
	DataDir string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// RateLimitRPS is the per-IP request rate limit in requests per second.
	// Defaults to 20. Must parse as a positive number.
	RateLimitRPS float64

	// DefaultCurrency seeds the settings file on first run. Defaults to "USD".
	DefaultCurrency string

	// OpenTripMapAPIKey enables live place search when set. Optional;
	// without it place search falls back to the local cache and samples.
	OpenTripMapAPIKey string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error for values that are set but do not parse.
func Load() (Config, error) {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DataDir:           getEnv("DATA_DIR", "./data"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DefaultCurrency:   getEnv("DEFAULT_CURRENCY", "USD"),
		OpenTripMapAPIKey: os.Getenv("OPENTRIPMAP_API_KEY"),
	}

	rps := getEnv("RATE_LIMIT_RPS", "20")
	v, err := strconv.ParseFloat(rps, 64)
	if err != nil || v <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be a positive number, got %q", rps)
	}
	cfg.RateLimitRPS = v

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
