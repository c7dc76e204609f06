// Package config loads and validates the .spipy.yml project configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up in the working directory.
const DefaultFileName = ".spipy.yml"

// Config represents the top-level .spipy.yml configuration
type Config struct {
	Version string        `yaml:"version"`
	Board   string        `yaml:"board"`            // Board name, namespaces every remote key and channel
	DataDir string        `yaml:"data_dir"`         // Durable local storage directory
	Remote  *RemoteConfig `yaml:"remote,omitempty"` // Remote board mirror; omit to stay local-only
}

// RemoteConfig specifies the hosted board backing this feed
type RemoteConfig struct {
	RedisAddr     string `yaml:"redis_addr"`               // host:port of the board's Redis server
	RedisPassword string `yaml:"redis_password,omitempty"` // Optional auth
	RedisDB       int    `yaml:"redis_db,omitempty"`       // Redis database number
}

// Validate performs strict validation on the configuration
func (c *Config) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	// Required: board name, usable inside Redis key patterns
	if c.Board == "" {
		return fmt.Errorf("board name is required")
	}
	if strings.ContainsAny(c.Board, ": \t\n*?[]") {
		return fmt.Errorf("invalid board name %q: must not contain colons, whitespace, or glob characters", c.Board)
	}

	// Required: data directory for durable local storage
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Remote != nil {
		if c.Remote.RedisAddr == "" {
			return fmt.Errorf("remote.redis_addr is required when a remote section is present")
		}
		if c.Remote.RedisDB < 0 {
			return fmt.Errorf("remote.redis_db must be >= 0, got %d", c.Remote.RedisDB)
		}
	}

	return nil
}

// HasRemote reports whether a remote board is configured.
func (c *Config) HasRemote() bool {
	return c.Remote != nil
}

// Load reads and validates .spipy.yml from the specified path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration written by `spipy init`.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Board:   "default",
		DataDir: ".spipy",
		Remote: &RemoteConfig{
			RedisAddr: "localhost:6379",
		},
	}
}

// Marshal renders the configuration as YAML for writing to disk.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
