// Package config reads server settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Elizabethomito/eventboard/internal/seed"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Addr          string
	CheckInSecret string
	LogLevel      string
	Environment   string
	Timezone      string
	SeedFile      string
	SeedAnchor    string
	CORSOrigins   []string
}

// Load reads a .env file if present, then the environment. A missing
// .env file is not an error; a malformed one is.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Addr:          getenv("ADDR", ":8080"),
		CheckInSecret: getenv("CHECKIN_SECRET", "changeme-use-a-real-secret-in-production"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		Environment:   getenv("ENVIRONMENT", "development"),
		Timezone:      getenv("TIMEZONE", "Local"),
		SeedFile:      getenv("SEED_FILE", ""),
		SeedAnchor:    getenv("SEED_ANCHOR", seed.AnchorNow),
		CORSOrigins:   splitList(getenv("CORS_ORIGINS", "*")),
	}
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// getenv returns the value of the named environment variable, or fallback
// if the variable is not set or is empty.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
