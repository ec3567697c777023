package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings. Values come from an optional YAML file,
// then environment variables, then defaults, in that order of increasing
// precedence for the environment and decreasing for defaults: defaults <
// file < env.
type Config struct {
	Server struct {
		Port           string  `yaml:"port"`
		RateLimitRPS   float64 `yaml:"rate_limit_rps"`
		RateLimitBurst int     `yaml:"rate_limit_burst"`
	} `yaml:"server"`

	Postgres struct {
		// Empty disables plan history persistence.
		URL string `yaml:"url"`
	} `yaml:"postgres"`

	Redis struct {
		// Empty disables the response cache.
		URL        string `yaml:"url"`
		TTLSeconds int    `yaml:"ttl_seconds"`
	} `yaml:"redis"`

	Optimizer struct {
		SameWilayaBias float64 `yaml:"same_wilaya_bias"`
		AvgSpeedKmh    float64 `yaml:"avg_speed_kmh"`
		MinStopMinutes int     `yaml:"min_stop_minutes"`
	} `yaml:"optimizer"`
}

// CacheTTL returns the response cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Redis.TTLSeconds) * time.Second
}

// Load reads configuration from the YAML file at path (skipped when path is
// empty or the file does not exist), applies environment overrides and
// defaults, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	applyDefaults(cfg)

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("load config: parse %q: %w", path, err)
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	cfg.Server.Port = "8080"
	cfg.Server.RateLimitRPS = 20
	cfg.Server.RateLimitBurst = 40
	cfg.Redis.TTLSeconds = 300
	cfg.Optimizer.SameWilayaBias = 0.5
	cfg.Optimizer.AvgSpeedKmh = 35.0
	cfg.Optimizer.MinStopMinutes = 5
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.URL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Redis.TTLSeconds = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Server.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitBurst = n
		}
	}
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server port %q is not numeric", c.Server.Port)
	}
	if c.Server.RateLimitRPS <= 0 {
		return fmt.Errorf("rate_limit_rps must be positive, got %v", c.Server.RateLimitRPS)
	}
	if c.Server.RateLimitBurst < 1 {
		return fmt.Errorf("rate_limit_burst must be at least 1, got %d", c.Server.RateLimitBurst)
	}
	if c.Redis.TTLSeconds <= 0 {
		return fmt.Errorf("redis ttl_seconds must be positive, got %d", c.Redis.TTLSeconds)
	}
	if c.Optimizer.SameWilayaBias <= 0 || c.Optimizer.SameWilayaBias > 1 {
		return fmt.Errorf("optimizer same_wilaya_bias must be in (0,1], got %v", c.Optimizer.SameWilayaBias)
	}
	if c.Optimizer.AvgSpeedKmh <= 0 {
		return fmt.Errorf("optimizer avg_speed_kmh must be positive, got %v", c.Optimizer.AvgSpeedKmh)
	}
	if c.Optimizer.MinStopMinutes < 0 {
		return fmt.Errorf("optimizer min_stop_minutes must not be negative, got %d", c.Optimizer.MinStopMinutes)
	}
	return nil
}
