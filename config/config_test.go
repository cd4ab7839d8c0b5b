package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("Expected default 24h expiry, got %v", cfg.JWTExpiry)
	}
	if cfg.Mongo.DatabaseName != "jotbox" {
		t.Errorf("Expected default database jotbox, got %q", cfg.Mongo.DatabaseName)
	}
	if len(cfg.CORSOrigins) == 0 {
		t.Error("Expected a default CORS origin")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRATION_TIME", "3600")
	t.Setenv("MONGO_DB", "jotbox_test")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %q", cfg.Port)
	}
	if cfg.JWTExpiry != time.Hour {
		t.Errorf("Expected 1h expiry, got %v", cfg.JWTExpiry)
	}
	if cfg.Mongo.DatabaseName != "jotbox_test" {
		t.Errorf("Expected database jotbox_test, got %q", cfg.Mongo.DatabaseName)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.example" {
		t.Errorf("Expected two trimmed origins, got %v", cfg.CORSOrigins)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Error("Expected an error when JWT_SECRET_KEY is unset")
	}
}

func TestLoadRejectsNonPositiveExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("JWT_EXPIRATION_TIME", "0")

	if _, err := Load(); err == nil {
		t.Error("Expected an error for zero expiry")
	}
}
