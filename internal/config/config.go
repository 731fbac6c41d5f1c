// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scope        string
	UsageURL     string
	HTTPTimeout  time.Duration
	ListenAddr   string
}

// Default values
const (
	defaultUsageURL    = "https://starlink-beta.elcome.com/api/public/v2/data-usage/query"
	defaultHTTPTimeout = 30 * time.Second
	defaultListenAddr  = ":8080"
)

// MissingError reports required configuration variables that were not
// set. Startup fails on it; it is never retried.
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Vars, ", "))
}

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		TokenURL:     getEnvString("ELCOME_TOKEN_URL", ""),
		ClientID:     getEnvString("ELCOME_CLIENT_ID", ""),
		ClientSecret: getEnvString("ELCOME_CLIENT_SECRET", ""),
		Scope:        getEnvString("ELCOME_SCOPE", ""),
		UsageURL:     getEnvString("ELCOME_USAGE_URL", defaultUsageURL),
		HTTPTimeout:  getEnvDuration("HTTP_TIMEOUT", defaultHTTPTimeout),
		ListenAddr:   getEnvString("LISTEN_ADDR", defaultListenAddr),
	}

	var missing []string
	if cfg.TokenURL == "" {
		missing = append(missing, "ELCOME_TOKEN_URL")
	}
	if cfg.ClientID == "" {
		missing = append(missing, "ELCOME_CLIENT_ID")
	}
	if cfg.ClientSecret == "" {
		missing = append(missing, "ELCOME_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return nil, &MissingError{Vars: missing}
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "sud", ".env"),
			filepath.Join(home, ".sud", ".env"),
		)
	}

	// Parent directory (useful for development)
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(cwd), ".env"))
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
