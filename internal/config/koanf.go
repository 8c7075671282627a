package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file when none is
// given explicitly. The first existing file wins.
var DefaultConfigPaths = []string{
	"roommate.yaml",
	"roommate.yml",
	"roommate.json",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "ROOMMATE_CONFIG"

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"*"},
		},
		Store: StoreConfig{
			Driver:      DriverMemory,
			BadgerPath:  "data/sessions",
			RedisPrefix: "roommate:session:",
		},
		Engine: EngineConfig{
			WeightCap:     0,
			FeatureLimit:  5,
			MaxCandidates: 1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		RateLimit: RateLimitConfig{
			Enabled:  true,
			Requests: 600,
			Window:   time.Minute,
			Burst:    60,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML or JSON file
// and ROOMMATE_* environment variables, in increasing priority. An empty path
// searches ROOMMATE_CONFIG and DefaultConfigPaths.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if path != "" {
		// JSON is a subset of YAML, so one parser handles both
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitListField(k, "server.cors_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lower-cased environment variable names to config keys.
// Unlisted variables are ignored.
var envMappings = map[string]string{
	"roommate_host":             "server.host",
	"roommate_port":             "server.port",
	"roommate_read_timeout":     "server.read_timeout",
	"roommate_write_timeout":    "server.write_timeout",
	"roommate_shutdown_timeout": "server.shutdown_timeout",
	"roommate_cors_origins":     "server.cors_origins",

	"roommate_store_driver": "store.driver",
	"roommate_database_url": "store.database_url",
	"database_url":          "store.database_url",
	"roommate_badger_path":  "store.badger_path",
	"roommate_redis_url":    "store.redis_url",
	"redis_url":             "store.redis_url",
	"roommate_redis_prefix": "store.redis_prefix",
	"roommate_session_ttl":  "store.session_ttl",

	"roommate_weight_cap":     "engine.weight_cap",
	"roommate_feature_limit":  "engine.feature_limit",
	"roommate_max_candidates": "engine.max_candidates",

	"roommate_log_level":  "logging.level",
	"roommate_log_format": "logging.format",
	"roommate_log_caller": "logging.caller",

	"roommate_rate_limit_enabled":  "rate_limit.enabled",
	"roommate_rate_limit_requests": "rate_limit.requests",
	"roommate_rate_limit_window":   "rate_limit.window",
	"roommate_rate_limit_burst":    "rate_limit.burst",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// splitListField turns a comma-separated string (as set from the environment)
// into a list.
func splitListField(k *koanf.Koanf, path string) error {
	strVal, ok := k.Get(path).(string)
	if !ok {
		return nil
	}

	parts := strings.Split(strVal, ",")
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	if err := k.Set(path, trimmed); err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	return nil
}
