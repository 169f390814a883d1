// Package config provides environment-driven configuration for the
// marketplace front end.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings shared by the CLI and gateway front ends.
type Config struct {
	// APIBaseURL is the address of the marketplace REST backend,
	// e.g. "https://api.example.com". Fixed for the process lifetime.
	APIBaseURL string

	GatewayPort  int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// SessionMaxAge bounds how long a gateway browser session lives, in seconds.
	SessionMaxAge int

	// AllowedOrigins lists origins permitted by the gateway CORS policy.
	AllowedOrigins []string
}

// Load reads configuration from the environment. A missing API_BASE_URL is
// logged as an error but does not abort startup; requests will fail at the
// network layer instead.
func Load() *Config {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		slog.Error("API_BASE_URL is not set; backend requests will fail")
	}

	port, _ := strconv.Atoi(GetEnvOrDefault("GATEWAY_PORT", "8080"))

	return &Config{
		APIBaseURL:     strings.TrimRight(baseURL, "/"),
		GatewayPort:    port,
		ReadTimeout:    getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:    getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		RedisAddr:      GetEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        0,
		SessionMaxAge:  getEnvInt("SESSION_MAX_AGE", 24*60*60),
		AllowedOrigins: splitOrigins(GetEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

// ValidateEnv validates that all required environment variables are set
func ValidateEnv(requiredVars []string) error {
	var missing []string

	for _, varName := range requiredVars {
		if os.Getenv(varName) == "" {
			missing = append(missing, varName)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// GetEnvOrDefault retrieves an environment variable or returns a default value
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
