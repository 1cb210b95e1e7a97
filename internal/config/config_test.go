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
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr: %s", cfg.HTTPAddr)
	}
	if cfg.TickInterval != time.Second {
		t.Fatalf("unexpected tick interval: %s", cfg.TickInterval)
	}
	if cfg.EventLimit != 50 {
		t.Fatalf("unexpected event limit: %d", cfg.EventLimit)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
	if cfg.DBDSN != "" || cfg.RedisAddr != "" {
		t.Fatalf("backends must default to unset: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HEALTHQUEST_HTTP_ADDR", ":9090")
	t.Setenv("HEALTHQUEST_TICK_INTERVAL", "250ms")
	t.Setenv("HEALTHQUEST_EVENT_LIMIT", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.TickInterval != 250*time.Millisecond || cfg.EventLimit != 10 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_RejectsNonPositiveValues(t *testing.T) {
	t.Setenv("HEALTHQUEST_TICK_INTERVAL", "0s")
	if _, err := Load(); err == nil {
		t.Fatal("zero tick interval must be rejected")
	}

	t.Setenv("HEALTHQUEST_TICK_INTERVAL", "1s")
	t.Setenv("HEALTHQUEST_EVENT_LIMIT", "0")
	if _, err := Load(); err == nil {
		t.Fatal("zero event limit must be rejected")
	}
}
