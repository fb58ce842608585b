// Package config loads the service configuration from an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the complete service configuration.
type Config struct {
	// Listen is the address the HTTP server binds to.
	Listen string `yaml:"listen"`
	// Seed is the path of a JSON seed file. Empty selects the embedded seed.
	Seed    string  `yaml:"seed"`
	Log     Log     `yaml:"log"`
	GraphQL GraphQL `yaml:"graphql"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type GraphQL struct {
	MaxParallelism int `yaml:"maxParallelism"`
	// DeleteCreatureReturns is "removed" or "remaining".
	DeleteCreatureReturns string `yaml:"deleteCreatureReturns"`
	StrictErrors          bool   `yaml:"strictErrors"`
	GraphiQL              bool   `yaml:"graphiql"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Listen: ":4000",
		Log: Log{
			Level:  "info",
			Format: "console",
		},
		GraphQL: GraphQL{
			MaxParallelism:        10,
			DeleteCreatureReturns: "removed",
			GraphiQL:              true,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies the PORT
// environment variable. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		host, _, err := net.SplitHostPort(cfg.Listen)
		if err != nil {
			host = ""
		}
		cfg.Listen = net.JoinHostPort(host, port)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New("config: listen address is required")
	}
	_, port, err := net.SplitHostPort(c.Listen)
	if err != nil {
		return fmt.Errorf("config: listen address: %w", err)
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return fmt.Errorf("config: invalid port %q", port)
	}
	if c.GraphQL.MaxParallelism < 1 {
		return fmt.Errorf("config: maxParallelism must be positive, got %d", c.GraphQL.MaxParallelism)
	}
	switch c.GraphQL.DeleteCreatureReturns {
	case "removed", "remaining":
	default:
		return fmt.Errorf("config: deleteCreatureReturns must be removed or remaining, got %q", c.GraphQL.DeleteCreatureReturns)
	}
	return nil
}
