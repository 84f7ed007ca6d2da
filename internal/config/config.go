// Package config loads service configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the service
type Config struct {
	// ListenAddr is the HTTP listen address, e.g. ":8080"
	ListenAddr string
	// DBDriver selects the database: "sqlite3" or "postgres"
	DBDriver string
	// DBDSN is the driver-specific connection string
	DBDSN string
	// JWTSecret signs access tokens; the service refuses to start without it
	JWTSecret string
	// JWTTTL is the access token lifetime
	JWTTTL time.Duration
	// TelegramToken enables the reminder notifier when set
	TelegramToken string
	// AttemptRetention is how long incorrect attempts are kept before purging
	AttemptRetention time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:    stringFromEnv("LISTEN_ADDR", ":8080"),
		DBDriver:      stringFromEnv("DB_DRIVER", "sqlite3"),
		DBDSN:         stringFromEnv("DB_DSN", "data/vocabtrainer.db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	if cfg.DBDriver != "sqlite3" && cfg.DBDriver != "postgres" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	ttlHours, err := intFromEnv("JWT_TTL_HOURS", 72)
	if err != nil {
		return nil, err
	}
	cfg.JWTTTL = time.Duration(ttlHours) * time.Hour

	retentionDays, err := intFromEnv("ATTEMPT_RETENTION_DAYS", 90)
	if err != nil {
		return nil, err
	}
	cfg.AttemptRetention = time.Duration(retentionDays) * 24 * time.Hour

	return cfg, nil
}

func stringFromEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}
