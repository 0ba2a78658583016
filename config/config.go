package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the journal editor's configuration: where the backend
// lives for client commands, and how the reference server runs.
type Config struct {
	API    APIConfig    `json:"api" yaml:"api"`
	Server ServerConfig `json:"server" yaml:"server"`
}

// APIConfig points the editor at a journal backend.
type APIConfig struct {
	BaseURL string `json:"base_url" yaml:"base_url"`
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// ServerConfig configures the reference server.
type ServerConfig struct {
	Addr   string `json:"addr" yaml:"addr"`
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ParseTimeout converts the request timeout string to a time.Duration.
func (a APIConfig) ParseTimeout() (time.Duration, error) {
	if a.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(a.Timeout)
}

// LoadFromFile loads configuration from a file (YAML or JSON based on
// content; YAML is tried first).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on
// extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides config values from the environment. Used together
// with godotenv loading in main, so a .env file works the same as real
// environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("TJ_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("TJ_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("TJ_DB"); v != "" {
		c.Server.DBPath = v
	}
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if _, err := c.API.ParseTimeout(); err != nil {
		return fmt.Errorf("api.timeout: %w", err)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.DBPath == "" {
		return fmt.Errorf("server.db_path is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000/api",
			Timeout: "30s",
		},
		Server: ServerConfig{
			Addr:   ":8000",
			DBPath: "./journal.sqlite",
		},
	}
}
