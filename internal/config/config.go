package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort           = 8080
	defaultTimeoutSeconds = 10
	maxTimeoutSeconds     = 120
)

// Config represents the application configuration parsed from YAML.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Generation GenerationConfig `yaml:"generation"`
}

// ServerConfig defines listener configuration.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// GenerationConfig bounds the dispatcher's generator calls.
type GenerationConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the generator call timeout as a duration.
func (g GenerationConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// Default returns the built-in configuration the service runs with when no
// file is supplied.
func Default() Config {
	return Config{
		Server:     ServerConfig{Port: defaultPort},
		Generation: GenerationConfig{TimeoutSeconds: defaultTimeoutSeconds},
	}
}

// Load reads YAML configuration from disk over the defaults and validates
// the result.
func Load(path string) (Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("resolve config path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %q: %w", absPath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %q: %w", absPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate performs strict sanity checks on the configuration.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid TCP port, got %d", c.Server.Port)
	}
	if c.Generation.TimeoutSeconds <= 0 || c.Generation.TimeoutSeconds > maxTimeoutSeconds {
		return fmt.Errorf("generation.timeout_seconds must be between 1 and %d, got %d",
			maxTimeoutSeconds, c.Generation.TimeoutSeconds)
	}
	return nil
}
