package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lully/dayplan/internal/domain"
)

// Config covers process-level configuration: an optional YAML file overridden
// by LULLY_* environment variables. The schedule defaults here seed the
// normalization fallbacks; visitors still override them per link.
type Config struct {
	Environment string `yaml:"environment"`
	HTTPBind    string `yaml:"http_bind"`
	HTTPPort    int    `yaml:"http_port"`
	// BaseURL is the public base used in share links (e.g. https://plan.example.com).
	// When empty, links are built from the incoming request's host.
	BaseURL    string `yaml:"base_url"`
	InstanceID string `yaml:"instance_id"`

	DefaultName          string  `yaml:"default_name"`
	DefaultFirstFeed     string  `yaml:"default_first_feed"`
	DefaultIntervalHours float64 `yaml:"default_interval_hours"`
	DefaultLastFeed      string  `yaml:"default_last_feed"`
}

// Load reads the YAML file at path (skipped when empty), applies environment
// overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Environment:          "development",
		HTTPBind:             "0.0.0.0",
		HTTPPort:             8080,
		DefaultName:          domain.DefaultName,
		DefaultFirstFeed:     domain.DefaultFirstFeed,
		DefaultIntervalHours: domain.DefaultIntervalHours,
		DefaultLastFeed:      domain.DefaultLastFeed,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Environment = getEnv("LULLY_ENV", cfg.Environment)
	cfg.HTTPBind = getEnv("LULLY_HTTP_BIND", cfg.HTTPBind)
	cfg.HTTPPort = getEnvInt("LULLY_HTTP_PORT", cfg.HTTPPort)
	cfg.BaseURL = getEnv("LULLY_BASE_URL", cfg.BaseURL)
	cfg.InstanceID = getEnv("LULLY_INSTANCE_ID", cfg.InstanceID)
	cfg.DefaultName = getEnv("LULLY_DEFAULT_NAME", cfg.DefaultName)
	cfg.DefaultFirstFeed = getEnv("LULLY_DEFAULT_FIRST_FEED", cfg.DefaultFirstFeed)
	cfg.DefaultIntervalHours = getEnvFloat("LULLY_DEFAULT_INTERVAL_HOURS", cfg.DefaultIntervalHours)
	cfg.DefaultLastFeed = getEnv("LULLY_DEFAULT_LAST_FEED", cfg.DefaultLastFeed)

	if cfg.InstanceID == "" {
		cfg.InstanceID = uuid.NewString()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects operator mistakes outright; unlike visitor input, config
// errors should not be silently papered over.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port %d", c.HTTPPort)
	}
	if _, err := domain.ParseTimeOfDay(c.DefaultFirstFeed); err != nil {
		return fmt.Errorf("invalid default_first_feed: %w", err)
	}
	if _, err := domain.ParseTimeOfDay(c.DefaultLastFeed); err != nil {
		return fmt.Errorf("invalid default_last_feed: %w", err)
	}
	if c.DefaultIntervalHours <= 0 {
		return fmt.Errorf("default_interval_hours must be positive, got %v", c.DefaultIntervalHours)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
