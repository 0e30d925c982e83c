package config

import (
	"fmt"
	"os"
	"strconv"
)

// minSecretLen is the shortest session secret accepted; anything shorter
// undermines HMAC-SHA256 signing of session cookies.
const minSecretLen = 32

// Config holds the application configuration. It is assembled once at
// startup and passed explicitly to whatever needs it.
type Config struct {
	Port          int
	DatabasePath  string
	SessionSecret string
	CookieSecure  bool
}

// Load reads configuration from environment variables, applying defaults
// where a variable is unset. SESSION_SECRET has no default.
func Load() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d characters", minSecretLen)
	}

	return &Config{
		Port:          port,
		DatabasePath:  getEnv("DATABASE_PATH", "userdir.db"),
		SessionSecret: secret,
		// Default to secure cookies; disable only for local development.
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
