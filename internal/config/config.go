// Package config provides configuration loading and validation for the
// interview engine server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const defaultPort = 8080

// Config holds the server configuration. Values can come from a JSON file,
// environment variables, or both; environment variables win.
type Config struct {
	Port         int    `json:"port,omitempty"`
	DatabaseURL  string `json:"database_url,omitempty"`
	GeminiAPIKey string `json:"api_key,omitempty"`
	Model        string `json:"model,omitempty"`

	JWT JWTConfig `json:"-"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the config: PORT,
// DATABASE_URL, GEMINI_API_KEY, GEMINI_MODEL, plus the JWT settings via
// NewJWTConfig.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %v", err)
		}
		c.Port = port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Model = v
	}

	jwtCfg, err := NewJWTConfig()
	if err != nil {
		return err
	}
	c.JWT = *jwtCfg

	return nil
}

// Validate checks that every required value is present.
func (c *Config) Validate() error {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: database_url is required (set DATABASE_URL)")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: api_key is required (set GEMINI_API_KEY)")
	}
	return nil
}
