package config_test

import (
	"os"
	"testing"

	"github.com/kmdeck/userdir/internal/config"
)

const testSecret = "a-long-enough-secret-0123456789abcdef"

// unsetEnv removes a variable for the duration of the test. t.Setenv
// registers the restore; os.Unsetenv then clears the value.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	for _, key := range []string{"PORT", "DATABASE_PATH", "COOKIE_SECURE"} {
		unsetEnv(t, key)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "userdir.db" {
		t.Errorf("DatabasePath: expected userdir.db, got %s", cfg.DatabasePath)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure should default to true")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("COOKIE_SECURE", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port: expected 9000, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/other.db" {
		t.Errorf("DatabasePath: expected /tmp/other.db, got %s", cfg.DatabasePath)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure should be false when COOKIE_SECURE=false")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	unsetEnv(t, "SESSION_SECRET")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error when SESSION_SECRET is unset")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "too-short")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for a short SESSION_SECRET")
	}
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("PORT", "not-a-number")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for a non-numeric PORT")
	}
}
