// Package config loads and saves the syskit CLI configuration. Settings
// live in a YAML file under the user configuration directory; a missing
// file means defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the persisted CLI settings.
type Config struct {
	// Shell overrides the command interpreter used for shell execution.
	// It must accept the POSIX -c convention. Empty selects the platform
	// default.
	Shell string `yaml:"shell,omitempty"`

	// AssumeYes skips confirmation prompts.
	AssumeYes bool `yaml:"assume_yes,omitempty"`

	// Heartbeat is the liveness message interval for long-running
	// commands, as a Go duration string ("30s", "2m"). Empty disables
	// the heartbeat.
	Heartbeat string `yaml:"heartbeat,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{}
}

// Path returns the config file location under the user config directory.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, "syskit", "config.yaml"), nil
}

// Load reads the configuration from the default path. A missing file is
// not an error; it yields Default().
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveFile writes the configuration to an explicit path, creating the
// directory when needed. The file is written with user-only permissions.
func (c *Config) SaveFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// HeartbeatInterval returns the parsed heartbeat interval, or zero when
// the heartbeat is disabled.
func (c *Config) HeartbeatInterval() time.Duration {
	if c.Heartbeat == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Heartbeat)
	if err != nil {
		return 0
	}
	return d
}

func (c *Config) validate() error {
	if c.Heartbeat != "" {
		if _, err := time.ParseDuration(c.Heartbeat); err != nil {
			return fmt.Errorf("heartbeat interval %q: %w", c.Heartbeat, err)
		}
	}
	return nil
}
