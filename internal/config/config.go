// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the search service.
type Config struct {
	Port                string
	DatabaseURL         string
	RedisURL            string
	CatalogRefreshHours int // How often the facet catalog cron fires
}

// Load reads environment variables and returns a validated Config.
// A local .env file, when present, is loaded first; real environment
// variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	interval := 6
	if s := os.Getenv("CATALOG_REFRESH_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("CATALOG_REFRESH_HOURS must be a positive integer, got %q", s)
		}
		interval = v
	}

	port := os.Getenv("SEARCH_PORT")
	if port == "" {
		port = "8083"
	}

	return &Config{
		Port:                port,
		DatabaseURL:         dbURL,
		RedisURL:            redisURL,
		CatalogRefreshHours: interval,
	}, nil
}
