package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ENV", "API_BASE_URL", "API_TOKEN", "CONSOLE_PORT", "MOCKAPI_PORT", "JWT_SECRET", "JWT_EXPIRY"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.ConsolePort != "3000" || cfg.MockAPIPort != "8000" {
		t.Errorf("ports = %q/%q", cfg.ConsolePort, cfg.MockAPIPort)
	}
	if cfg.JWTExpiry != 30*time.Minute {
		t.Errorf("JWTExpiry = %v, want 30m", cfg.JWTExpiry)
	}
	if cfg.APIToken != "" {
		t.Errorf("APIToken = %q, want empty", cfg.APIToken)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/")
	t.Setenv("API_TOKEN", "tok")
	t.Setenv("JWT_EXPIRY", "2h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("APIBaseURL = %q, want trailing slash trimmed", cfg.APIBaseURL)
	}
	if cfg.APIToken != "tok" {
		t.Errorf("APIToken = %q, want tok", cfg.APIToken)
	}
	if cfg.JWTExpiry != 2*time.Hour {
		t.Errorf("JWTExpiry = %v, want 2h", cfg.JWTExpiry)
	}
}

func TestLoadBadExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid JWT_EXPIRY")
	}
}

func TestValidateMockAPI(t *testing.T) {
	cfg := Config{Env: "production", JWTSecret: devJWTSecret}
	if err := cfg.ValidateMockAPI(); !errors.Is(err, ErrDevSecretInProduction) {
		t.Errorf("ValidateMockAPI() = %v, want ErrDevSecretInProduction", err)
	}

	cfg.JWTSecret = "real-secret"
	if err := cfg.ValidateMockAPI(); err != nil {
		t.Errorf("ValidateMockAPI() = %v, want nil", err)
	}

	cfg = Config{Env: "development", JWTSecret: devJWTSecret}
	if err := cfg.ValidateMockAPI(); err != nil {
		t.Errorf("ValidateMockAPI() in development = %v, want nil", err)
	}
}
