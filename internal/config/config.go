// Package config provides file- and environment-driven configuration for the
// multipath CLI and server.
//
// Precedence, lowest first: built-in defaults, the YAML file passed to Load,
// MULTIPATH_* environment variables. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const envPrefix = "MULTIPATH_"

// Config holds all application configuration values.
type Config struct {
	LogLevel    string   `yaml:"log_level"`
	LogFormat   string   `yaml:"log_format"`
	Output      string   `yaml:"output"`
	Strategy    string   `yaml:"strategy"`
	Policy      string   `yaml:"policy"`
	MaxPaths    int      `yaml:"max_paths"`
	Workers     int      `yaml:"workers"`
	ListenAddr  string   `yaml:"listen_addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		LogFormat:   "text",
		Output:      "table",
		Strategy:    "heap",
		Policy:      "vertices",
		MaxPaths:    0,
		Workers:     4,
		ListenAddr:  "127.0.0.1:8080",
		CORSOrigins: []string{"http://localhost:3000"},
	}
}

// Load reads path (optional; "" skips the file), applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = envOrDefault("LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOrDefault("LOG_FORMAT", c.LogFormat)
	c.Output = envOrDefault("OUTPUT", c.Output)
	c.Strategy = envOrDefault("STRATEGY", c.Strategy)
	c.Policy = envOrDefault("POLICY", c.Policy)
	c.ListenAddr = envOrDefault("LISTEN_ADDR", c.ListenAddr)

	var err error
	if c.MaxPaths, err = envInt("MAX_PATHS", c.MaxPaths); err != nil {
		return err
	}
	if c.Workers, err = envInt("WORKERS", c.Workers); err != nil {
		return err
	}

	if origins, ok := os.LookupEnv(envPrefix + "CORS_ORIGINS"); ok && origins != "" {
		c.CORSOrigins = strings.Split(origins, ",")
		for i, o := range c.CORSOrigins {
			c.CORSOrigins[i] = strings.TrimSpace(o)
		}
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}

	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(envPrefix + key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s%s must be an integer: %w", envPrefix, key, err)
	}

	return n, nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")
