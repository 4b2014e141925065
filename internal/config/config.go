// Package config provides environment-based configuration for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the server configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int
	// GeminiAPIKey is the AI gateway credential. Required.
	GeminiAPIKey string
	// DatabaseURL selects the Postgres state backend when set.
	DatabaseURL string
	// StorageDir is where the file state backend keeps its blob when no
	// database is configured.
	StorageDir string
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Port:         getEnvInt("PORT", 8080),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		StorageDir:   getEnvString("OPENCLO_STORAGE_DIR", "data"),
	}
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
