package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./enrolld.db)

	SMTPURL  string // Optional: smtp:// or smtps:// delivery URL; codes are logged when unset
	SMTPFrom string // Optional: sender address on validation e-mails

	CodeValidity   time.Duration // How long a validation code stays usable (default: 1m)
	AuthDelay      time.Duration // Fixed stall on every credential resolution (default: 1s)
	CodeCheckDelay time.Duration // Fixed stall before comparing a submitted code (default: 2s)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile: getEnvOrDefault("ENROLLD_DATABASE_FILE", "enrolld.db"),

		SMTPURL:  os.Getenv("ENROLLD_SMTP_URL"),
		SMTPFrom: getEnvOrDefault("ENROLLD_SMTP_FROM", "noreply@localhost"),

		CodeValidity:   getEnvDurationOrDefault("ENROLLD_CODE_VALIDITY", time.Minute),
		AuthDelay:      getEnvDurationOrDefault("ENROLLD_AUTH_DELAY", time.Second),
		CodeCheckDelay: getEnvDurationOrDefault("ENROLLD_CODE_CHECK_DELAY", 2*time.Second),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
