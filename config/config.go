package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration, loaded from environment variables
type Config struct {
	Port           string
	Host           string
	AllowedOrigins string

	// Upstream catalog source
	SourceURL        string
	CatalogTTL       time.Duration
	FetchTimeout     time.Duration
	FetchMaxAttempts int
	FetchBackoff     time.Duration
	RefreshCron      string

	// API surface
	RequireAPIKey    bool
	RateLimitEnabled bool
	RateLimitRPS     float64
}

// Load reads configuration from the environment with sensible defaults
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Host:           getEnv("HOST", "0.0.0.0"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		SourceURL:        getEnv("SOURCE_URL", "https://www.pickleballcentral.com/used-paddles/"),
		CatalogTTL:       getEnvDuration("CATALOG_TTL", 5*time.Minute),
		FetchTimeout:     getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		FetchMaxAttempts: getEnvInt("FETCH_MAX_ATTEMPTS", 3),
		FetchBackoff:     getEnvDuration("FETCH_BACKOFF", 3*time.Second),
		RefreshCron:      getEnv("REFRESH_CRON", "0 */5 * * * *"),

		RequireAPIKey:    getEnvBool("API_REQUIRE_KEY", false),
		RateLimitEnabled: getEnvBool("API_RATE_LIMIT_ENABLED", true),
		RateLimitRPS:     getEnvFloat("API_RATE_LIMIT_RPS", 5),
	}
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
