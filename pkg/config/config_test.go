package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
	if got := cfg.Session.IdleTTL; got != 30*time.Minute {
		t.Fatalf("expected idle TTL 30m, got %v", got)
	}
	if got := cfg.Session.CheckoutGrace; got != 30*time.Second {
		t.Fatalf("expected checkout grace 30s, got %v", got)
	}
	if got := cfg.Catalog.Timeout; got != 10*time.Second {
		t.Fatalf("expected catalog timeout 10s, got %v", got)
	}
	if got := cfg.Billing.Timeout; got != 15*time.Second {
		t.Fatalf("expected billing timeout 15s, got %v", got)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "9000")
	t.Setenv(EnvIdleTTL, "5m")
	t.Setenv(EnvCheckoutGrace, "10s")
	t.Setenv(EnvBillURL, "https://billing.example.com/api/bookings")
	t.Setenv(EnvBillAuth, "token-123")
	t.Setenv(EnvCORSOrigins, "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected IsProd true for %q", cfg.App.Env)
	}
	if cfg.Session.IdleTTL != 5*time.Minute {
		t.Fatalf("unexpected idle TTL %v", cfg.Session.IdleTTL)
	}
	if cfg.Billing.AuthToken != "token-123" {
		t.Fatalf("unexpected billing token %q", cfg.Billing.AuthToken)
	}
	if len(cfg.CORS.Origins) != 2 || cfg.CORS.Origins[1] != "https://b.example" {
		t.Fatalf("unexpected CORS origins %v", cfg.CORS.Origins)
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "Production"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
