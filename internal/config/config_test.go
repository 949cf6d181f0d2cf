package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AuthMaxAge != 24*time.Hour {
		t.Fatalf("expected default auth max age 24h, got %s", cfg.AuthMaxAge)
	}
	if cfg.UserCacheTTL != 5*time.Minute {
		t.Fatalf("expected default cache ttl 5m, got %s", cfg.UserCacheTTL)
	}
	if cfg.Address() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Address())
	}
	if !cfg.IsDev() {
		t.Fatalf("development env should report dev mode")
	}
}

func TestLoadRequiresBotTokenInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/app")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing BOT_TOKEN")
	}
}

func TestLoadAuthMaxAgeSeconds(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_MAX_AGE_SECONDS", "3600")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AuthMaxAge != time.Hour {
		t.Fatalf("expected 1h, got %s", cfg.AuthMaxAge)
	}
}

func TestLoadAuthMaxAgeDuration(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_MAX_AGE_SECONDS", "")
	t.Setenv("AUTH_MAX_AGE", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AuthMaxAge != 30*time.Minute {
		t.Fatalf("expected 30m, got %s", cfg.AuthMaxAge)
	}
}

func TestLoadRejectsInvalidMaxAge(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_MAX_AGE_SECONDS", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid AUTH_MAX_AGE_SECONDS")
	}
}
