package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries process-level settings. Everything has a working
// default so the server runs with no environment at all, backed by the
// in-memory store.
type Config struct {
	HTTPAddr     string        `env:"HEALTHQUEST_HTTP_ADDR" envDefault:":8080"`
	DBDSN        string        `env:"HEALTHQUEST_DB_DSN"`
	RedisAddr    string        `env:"HEALTHQUEST_REDIS_ADDR"`
	TickInterval time.Duration `env:"HEALTHQUEST_TICK_INTERVAL" envDefault:"1s"`
	EventLimit   int           `env:"HEALTHQUEST_EVENT_LIMIT" envDefault:"50"`
	SessionTTL   time.Duration `env:"HEALTHQUEST_SESSION_TTL" envDefault:"1h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("tick interval must be positive, got %s", cfg.TickInterval)
	}
	if cfg.EventLimit <= 0 {
		return Config{}, fmt.Errorf("event limit must be positive, got %d", cfg.EventLimit)
	}
	return cfg, nil
}
