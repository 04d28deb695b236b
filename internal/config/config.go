// Package config loads formalized settings: defaults, then a YAML or TOML
// file, then environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Strategy names.
const (
	StrategyRules  = "rules"
	StrategyRemote = "remote"
)

// Theme names.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config is the full formalized configuration.
type Config struct {
	Strategy string        `yaml:"strategy" toml:"strategy"`
	Remote   RemoteConfig  `yaml:"remote" toml:"remote"`
	Logging  LoggingConfig `yaml:"logging" toml:"logging"`
	Server   ServerConfig  `yaml:"server" toml:"server"`
	UI       UIConfig      `yaml:"ui" toml:"ui"`
}

// RemoteConfig configures the generative model strategy.
type RemoteConfig struct {
	APIKey      string  `yaml:"api_key,omitempty" toml:"api_key"`
	Model       string  `yaml:"model" toml:"model"`
	Instruction string  `yaml:"instruction,omitempty" toml:"instruction"`
	Timeout     string  `yaml:"timeout" toml:"timeout"`
	Temperature float64 `yaml:"temperature" toml:"temperature"`
	// Sanitize strips wrapping quotes and code fences from model output.
	Sanitize bool `yaml:"sanitize" toml:"sanitize"`
}

// LoggingConfig configures the logger backend.
type LoggingConfig struct {
	Backend string `yaml:"backend" toml:"backend"`
	JSON    bool   `yaml:"json" toml:"json"`
	File    string `yaml:"file,omitempty" toml:"file"`
	Debug   bool   `yaml:"debug" toml:"debug"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int    `yaml:"port" toml:"port"`
	ReadTimeout    string `yaml:"read_timeout" toml:"read_timeout"`
	WriteTimeout   string `yaml:"write_timeout" toml:"write_timeout"`
	MaxRequestSize int    `yaml:"max_request_size" toml:"max_request_size"`
	Concurrency    int    `yaml:"concurrency" toml:"concurrency"`
	WarmUp         bool   `yaml:"warm_up" toml:"warm_up"`
}

// UIConfig configures the interactive shell.
type UIConfig struct {
	Theme string `yaml:"theme" toml:"theme"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Strategy: StrategyRules,
		Remote: RemoteConfig{
			Model:       "gemini-2.0-flash",
			Timeout:     "30s",
			Temperature: 0.2,
			Sanitize:    true,
		},
		Logging: LoggingConfig{
			Backend: "l",
		},
		Server: ServerConfig{
			Port:           8080,
			ReadTimeout:    "30s",
			WriteTimeout:   "30s",
			MaxRequestSize: 10 * 1024 * 1024, // 10MB
			WarmUp:         true,
		},
		UI: UIConfig{
			Theme: ThemeAuto,
		},
	}
}

// Load reads configuration from path. A missing file yields the defaults; files
// ending in .toml are parsed as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.decode(path, data); err != nil {
				return nil, err
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) decode(path string, data []byte) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML. The API key is never written.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := *c
	out.Remote.APIKey = ""
	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.Remote.APIKey = key
	}
	// GEMINI_API_KEY wins over GOOGLE_API_KEY.
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Remote.APIKey = key
	}
	if model := os.Getenv("FORMALIZED_MODEL"); model != "" {
		c.Remote.Model = model
	}
	if strategy := os.Getenv("FORMALIZED_STRATEGY"); strategy != "" {
		c.Strategy = strings.ToLower(strategy)
	}
	if theme := os.Getenv("FORMALIZED_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Strategy {
	case StrategyRules, StrategyRemote:
	default:
		return fmt.Errorf("unknown strategy %q", c.Strategy)
	}
	if _, err := c.RemoteTimeout(); err != nil {
		return err
	}
	if _, err := c.ServerReadTimeout(); err != nil {
		return err
	}
	if _, err := c.ServerWriteTimeout(); err != nil {
		return err
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Server.MaxRequestSize < 0 {
		return errors.New("server max_request_size must not be negative")
	}
	switch c.UI.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("unknown theme %q", c.UI.Theme)
	}
	return nil
}

// RemoteTimeout returns the parsed remote request timeout.
func (c *Config) RemoteTimeout() (time.Duration, error) {
	return parseDuration("remote.timeout", c.Remote.Timeout)
}

// ServerReadTimeout returns the parsed server read timeout.
func (c *Config) ServerReadTimeout() (time.Duration, error) {
	return parseDuration("server.read_timeout", c.Server.ReadTimeout)
}

// ServerWriteTimeout returns the parsed server write timeout.
func (c *Config) ServerWriteTimeout() (time.Duration, error) {
	return parseDuration("server.write_timeout", c.Server.WriteTimeout)
}

func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", field)
	}
	return d, nil
}
