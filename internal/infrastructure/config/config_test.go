package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("unexpected port: %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("unexpected env: %s", cfg.Env)
	}
	if cfg.TokenTTL != 168*time.Hour {
		t.Errorf("unexpected token ttl: %v", cfg.TokenTTL)
	}
	if cfg.PostExpireAfter != 720*time.Hour {
		t.Errorf("unexpected post expiry: %v", cfg.PostExpireAfter)
	}
	if cfg.Mongo.Database != "lostfound" {
		t.Errorf("unexpected mongo database: %s", cfg.Mongo.Database)
	}
	if cfg.JWTSecret == "" {
		t.Errorf("development must fall back to a signing secret")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("AUTH_RATE_MAX", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("unexpected port: %s", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("unexpected token ttl: %v", cfg.TokenTTL)
	}
	if cfg.AuthRateMax != 5 {
		t.Errorf("unexpected rate max: %d", cfg.AuthRateMax)
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("production without JWT_SECRET must fail")
	}

	t.Setenv("JWT_SECRET", "super-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWTSecret != "super-secret" {
		t.Errorf("unexpected secret: %s", cfg.JWTSecret)
	}
}
