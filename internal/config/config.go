package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var ErrEnvNotConfigured = errors.New("env not configured")

type Config struct {
	Host        string
	Port        int
	Environment string
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogMaxBackups int    `toml:"log_max_backups"`
	LogMaxAgeDays int    `toml:"log_max_age_days"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// remote coaching service
	CoachApiBaseURL        string `toml:"coach_api_base_url"`
	CoachApiTimeoutSeconds int    `toml:"coach_api_timeout_seconds"`
	CatalogCacheSeconds    int    `toml:"catalog_cache_seconds"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// editor
	DraftTTLMinutes     int `toml:"draft_ttl_minutes"`
	SaveRateLimitPerMin int `toml:"save_rate_limit_per_min"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvNotConfigured, env)
	}
	return cfg, nil
}

// Load reads the TOML config file and returns the section of the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config [%s]: %w", path, err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	return cfg, nil
}
