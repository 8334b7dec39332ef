package config

import (
	"errors"
	"os"
	"time"
)

type Config struct {
	Addr          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTAudience   string
	JWTExpiry     time.Duration
	EnableMetrics bool
}

func Load() *Config {
	config := &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTIssuer:     getEnv("JWT_ISS", "asset-management-api"),
		JWTAudience:   getEnv("JWT_AUD", "asset-management-api"),
		JWTExpiry:     24 * time.Hour, // Default to 24 hours
		EnableMetrics: os.Getenv("ENABLE_METRICS") == "true",
	}

	// Parse JWT expiry from environment if provided
	if expiryStr := os.Getenv("JWT_EXPIRY"); expiryStr != "" {
		if expiry, err := time.ParseDuration(expiryStr); err == nil {
			config.JWTExpiry = expiry
		}
	}

	return config
}

// Validate checks the fields main cannot run without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 characters")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
