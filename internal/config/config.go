package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const devJWTSecret = "dev-secret-change-in-production"

var ErrDevSecretInProduction = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Env         string
	APIBaseURL  string
	APIToken    string
	ConsolePort string
	MockAPIPort string
	JWTSecret   string
	JWTExpiry   time.Duration
}

// Load reads configuration from the environment. Call godotenv.Load first
// to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		Env:         getEnv("ENV", "development"),
		APIBaseURL:  strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000"), "/"),
		APIToken:    os.Getenv("API_TOKEN"),
		ConsolePort: getEnv("CONSOLE_PORT", "3000"),
		MockAPIPort: getEnv("MOCKAPI_PORT", "8000"),
		JWTSecret:   getEnv("JWT_SECRET", devJWTSecret),
	}

	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse JWT_EXPIRY: %w", err)
	}
	cfg.JWTExpiry = expiry

	return cfg, nil
}

// IsProduction reports whether ENV is "production".
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// ValidateMockAPI rejects the development JWT secret in production.
func (c Config) ValidateMockAPI() error {
	if c.IsProduction() && c.JWTSecret == devJWTSecret {
		return ErrDevSecretInProduction
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
