package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/shkapi/storefront/pkg/jwtx"
)

// ErrMissingSecret aborts startup when no signing secret is configured; a
// generated fallback would silently invalidate every token on restart.
var ErrMissingSecret = errors.New("app: AUTH_SECRET is required")

type Config struct {
	Secret   string        // Required: symmetric signing secret for session tokens
	Issuer   string        // Optional: issuer claim for tokens (default: storefront)
	TokenTTL time.Duration // Optional: session token lifetime (default: 2h)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./storefront.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Secret:              os.Getenv("AUTH_SECRET"),
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "storefront"),
		TokenTTL:            getEnvDurationOrDefault("AUTH_TOKEN_TTL", jwtx.DefaultSessionTokenTTL),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "storefront.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate rejects configurations the service must not start with.
func (c Config) Validate() error {
	if c.Secret == "" {
		return ErrMissingSecret
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "2h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
