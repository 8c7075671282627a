// Package config provides layered configuration loading and validation for the
// roommate matcher CLI and HTTP server.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Store drivers
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
	DriverRedis    = "redis"
)

// Config is the full runtime configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Store     StoreConfig     `koanf:"store"`
	Engine    EngineConfig    `koanf:"engine"`
	Logging   LoggingConfig   `koanf:"logging"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StoreConfig selects and configures the session store.
type StoreConfig struct {
	Driver      string        `koanf:"driver"`
	DatabaseURL string        `koanf:"database_url"`
	BadgerPath  string        `koanf:"badger_path"`
	RedisURL    string        `koanf:"redis_url"`
	RedisPrefix string        `koanf:"redis_prefix"`
	SessionTTL  time.Duration `koanf:"session_ttl"` // 0 keeps sessions forever
}

// EngineConfig tunes the preference engine wrapper.
type EngineConfig struct {
	// WeightCap bounds every stored weight to [-cap, cap]; 0 disables capping.
	WeightCap     float64 `koanf:"weight_cap"`
	FeatureLimit  int     `koanf:"feature_limit"`
	MaxCandidates int     `koanf:"max_candidates"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RateLimitConfig configures per-client request limiting of the HTTP API.
type RateLimitConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Burst    int           `koanf:"burst"`
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("config error: 'store.database_url' is required for the postgres driver")
		}
	case DriverBadger:
		if c.Store.BadgerPath == "" {
			return fmt.Errorf("config error: 'store.badger_path' is required for the badger driver")
		}
	case DriverRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("config error: 'store.redis_url' is required for the redis driver")
		}
	default:
		return fmt.Errorf("config error: unknown 'store.driver' %q (expected memory, postgres, badger or redis)", c.Store.Driver)
	}
	if c.Store.SessionTTL < 0 {
		return fmt.Errorf("config error: 'store.session_ttl' must be non-negative")
	}

	if c.Engine.WeightCap < 0 {
		return fmt.Errorf("config error: 'engine.weight_cap' must be non-negative")
	}
	if c.Engine.FeatureLimit < 0 {
		return fmt.Errorf("config error: 'engine.feature_limit' must be non-negative")
	}
	if c.Engine.MaxCandidates < 1 {
		return fmt.Errorf("config error: 'engine.max_candidates' must be positive")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("config error: 'logging.format' must be json or console, got %q", c.Logging.Format)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Requests < 1 {
			return fmt.Errorf("config error: 'rate_limit.requests' must be positive")
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("config error: 'rate_limit.window' must be positive")
		}
		if c.RateLimit.Burst < 0 {
			return fmt.Errorf("config error: 'rate_limit.burst' must be non-negative")
		}
	}

	return nil
}
