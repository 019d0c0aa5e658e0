package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/katalvlaran/multipath/dijkstra"
	"github.com/katalvlaran/multipath/paths"
	"github.com/sirupsen/logrus"
)

const maxWorkers = 64

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalid, c.LogFormat)
	}

	switch c.Output {
	case "table", "json":
	default:
		return fmt.Errorf("%w: output must be table or json, got %q", ErrInvalid, c.Output)
	}

	if _, err := c.EngineStrategy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.PathPolicy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if c.MaxPaths < 0 {
		return fmt.Errorf("%w: max_paths must be >= 0, got %d", ErrInvalid, c.MaxPaths)
	}
	if c.Workers < 1 || c.Workers > maxWorkers {
		return fmt.Errorf("%w: workers must be between 1 and %d, got %d", ErrInvalid, maxWorkers, c.Workers)
	}

	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		return fmt.Errorf("%w: listen_addr %q: %v", ErrInvalid, c.ListenAddr, err)
	}

	for _, o := range c.CORSOrigins {
		if o == "*" {
			return fmt.Errorf("%w: wildcard CORS origin is not allowed", ErrInvalid)
		}
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("%w: CORS origin %q must start with http:// or https://", ErrInvalid, o)
		}
	}

	return nil
}

// EngineStrategy parses Strategy.
func (c *Config) EngineStrategy() (dijkstra.Strategy, error) {
	return dijkstra.ParseStrategy(c.Strategy)
}

// PathPolicy parses Policy.
func (c *Config) PathPolicy() (paths.Policy, error) {
	return paths.ParsePolicy(c.Policy)
}
