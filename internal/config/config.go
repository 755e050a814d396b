package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Limits    LimitsConfig    `yaml:"limits"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// LimitsConfig bounds the inputs the API accepts. The computational core
// only enforces its own domain edges; these are the recommended UI bounds.
type LimitsConfig struct {
	MaxReps  int `yaml:"max_reps"`
	MaxWeeks int `yaml:"max_weeks"`
}

const (
	DefaultMaxReps  = 30
	DefaultMaxWeeks = 24
)

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix IRONMAX_ and underscore-separated paths:
//
//	IRONMAX_SERVER_HOST, IRONMAX_SERVER_PORT,
//	IRONMAX_TS_ENABLED, IRONMAX_TS_HOSTNAME, IRONMAX_TS_STATE_DIR,
//	IRONMAX_MAX_REPS, IRONMAX_MAX_WEEKS
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("IRONMAX_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("IRONMAX_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("IRONMAX_TS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("IRONMAX_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("IRONMAX_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("IRONMAX_MAX_REPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MaxReps = n
		}
	}
	if v := os.Getenv("IRONMAX_MAX_WEEKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MaxWeeks = n
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Limits.MaxReps == 0 {
		cfg.Limits.MaxReps = DefaultMaxReps
	}
	if cfg.Limits.MaxWeeks == 0 {
		cfg.Limits.MaxWeeks = DefaultMaxWeeks
	}
	if cfg.Tailscale.Enabled && cfg.Tailscale.Hostname == "" {
		cfg.Tailscale.Hostname = "ironmax"
	}
}

func (c *Config) validate() error {
	if !c.Tailscale.Enabled && c.Server.Port == 0 {
		return fmt.Errorf("server.port is required when tailscale is disabled")
	}
	if c.Limits.MaxReps < 1 {
		return fmt.Errorf("limits.max_reps must be at least 1")
	}
	if c.Limits.MaxWeeks < 1 {
		return fmt.Errorf("limits.max_weeks must be at least 1")
	}
	return nil
}
