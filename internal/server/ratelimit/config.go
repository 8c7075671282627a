package ratelimit

import (
	"time"

	"github.com/jonathan/roommate-matcher/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	DefaultBurst    int
	CleanupInterval time.Duration
	EndpointConfigs []EndpointConfig
}

// FromConfig builds the limiter configuration from the application config.
func FromConfig(cfg config.RateLimitConfig) *Config {
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    cfg.Requests,
		DefaultWindow:   cfg.Window,
		DefaultBurst:    cfg.Burst,
		CleanupInterval: 5 * time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Session creation allocates storage
		{Path: "/sessions", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		// Deletion is rare
		{Path: "/sessions/", Method: "DELETE", Limit: 30, Window: time.Minute, Burst: 5},
	}
}
