package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL          string
	Port           string
	DefaultLocale  string
	LocalesDir     string
	StatusCacheTTL time.Duration
	LogLevel       log.Level
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first; variables already set in the shell win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	pgURL := os.Getenv("PG_URL")
	if pgURL == "" {
		return nil, fmt.Errorf("PG_URL environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	defaultLocale := os.Getenv("DEFAULT_LOCALE")
	if defaultLocale == "" {
		defaultLocale = "en"
	}

	ttl := time.Minute
	if v := os.Getenv("STATUS_CACHE_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STATUS_CACHE_TTL %q: %w", v, err)
		}
		ttl = parsed
	}

	level := log.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		parsed, err := log.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
		level = parsed
	}

	return &Config{
		PGURL:          pgURL,
		Port:           port,
		DefaultLocale:  defaultLocale,
		LocalesDir:     os.Getenv("LOCALES_DIR"),
		StatusCacheTTL: ttl,
		LogLevel:       level,
	}, nil
}
