package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("JWT_SECRET", "")

	cfg := LoadConfig()
	if cfg.Database.DSN != "./data/receipts.db" {
		t.Fatalf("default DSN: got %q", cfg.Database.DSN)
	}
	if cfg.Server.HTTPAddr != ":8080" {
		t.Fatalf("default addr: got %q", cfg.Server.HTTPAddr)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("default token ttl: got %v", cfg.Auth.TokenTTL)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/masjid")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")

	cfg := LoadConfig()
	if cfg.Database.DSN != "postgres://localhost/masjid" {
		t.Fatalf("DSN: got %q", cfg.Database.DSN)
	}
	if cfg.Server.HTTPAddr != ":9090" {
		t.Fatalf("addr: got %q", cfg.Server.HTTPAddr)
	}
	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Fatalf("token ttl: got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Fatalf("max open conns: got %d", cfg.Database.MaxOpenConns)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{DSN: "./data/receipts.db"},
		Server:   ServerConfig{HTTPAddr: ":8080"},
		Auth:     AuthConfig{JWTSecret: "secret"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg.Auth.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing JWT secret should fail validation")
	}
}
