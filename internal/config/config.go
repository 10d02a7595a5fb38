package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// sentry
	SentryEnabled bool `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prom_metrics_host"`
	PrometheusMetricsPort string `toml:"prom_metrics_port"`
	// rate limiting
	StatusRateLimitAllowedPerMin int `toml:"status_rate_limit_allowed_per_min"`

	// RecomputeWindowDays limits for how long after completion a workout
	// edit still re-triggers the fatigue/calorie calculations.
	RecomputeWindowDays int `toml:"recompute_window_days"`
	// DefaultBodyWeightKg is used for calorie estimation when the user has
	// no body weight recorded.
	DefaultBodyWeightKg float64 `toml:"default_body_weight_kg"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s not found in %s", env, path)
	}

	cfg.Environment = env

	if cfg.RecomputeWindowDays <= 0 {
		cfg.RecomputeWindowDays = DefaultRecomputeWindowDays
	}
	if cfg.DefaultBodyWeightKg <= 0 {
		cfg.DefaultBodyWeightKg = DefaultBodyWeightKg
	}
	if cfg.StatusRateLimitAllowedPerMin <= 0 {
		cfg.StatusRateLimitAllowedPerMin = DefaultStatusRateLimitAllowedPerMin
	}

	return cfg, nil
}

const (
	// DefaultRecomputeWindowDays - no documented rationale for 4 days was
	// ever found, kept because the mobile clients rely on it.
	DefaultRecomputeWindowDays = 4

	DefaultBodyWeightKg = 70.0

	DefaultStatusRateLimitAllowedPerMin = 60
)
