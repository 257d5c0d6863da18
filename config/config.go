// Package config loads service configuration from a TOML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultConfigFile is the configuration file name looked up in the
	// working directory.
	DefaultConfigFile = "pebble.toml"

	EnvServerAddress     = "PEBBLE_SERVER_ADDRESS"
	EnvTelemetryEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Manifest  ManifestConfig  `toml:"manifest"`
}

type ServerConfig struct {
	Name    string `toml:"name"`
	Address string `toml:"address"`
}

type TelemetryConfig struct {
	Enabled  bool   `toml:"enabled"`
	Endpoint string `toml:"endpoint"`
}

type ManifestConfig struct {
	Service  string   `toml:"service"`
	Provider string   `toml:"provider"`
	Runtime  string   `toml:"runtime"`
	Handler  string   `toml:"handler"`
	Plugins  []string `toml:"plugins"`
}

// Load reads path and finalizes the result. A missing file is not an error;
// defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.loadDefaults()
	cfg.loadEnv()

	return &cfg, nil
}

func (c *Config) loadDefaults() {
	if c.Server.Name == "" {
		c.Server.Name = "pebble"
	}
	if c.Server.Address == "" {
		c.Server.Address = "0.0.0.0:8080"
	}
	if c.Manifest.Service == "" {
		c.Manifest.Service = c.Server.Name
	}
	if c.Manifest.Provider == "" {
		c.Manifest.Provider = "aws"
	}
	if c.Manifest.Runtime == "" {
		c.Manifest.Runtime = "go1.x"
	}
	if c.Manifest.Handler == "" {
		c.Manifest.Handler = "bootstrap"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvServerAddress); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv(EnvTelemetryEndpoint); v != "" {
		c.Telemetry.Endpoint = v
	}
}
