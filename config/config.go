package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      LogConfig      `yaml:"log"`
	Executor ExecutorConfig `yaml:"executor"`
	Agent    AgentConfig    `yaml:"agent"`

	// ExitZeroOnFailure keeps the historical behavior of always exiting 0.
	ExitZeroOnFailure bool `yaml:"exit_zero_on_failure"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ExecutorConfig struct {
	Shell string `yaml:"shell"`
}

type AgentConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	Binary      string `yaml:"binary"`
	GracePeriod string `yaml:"grace_period"`
}

func (a AgentConfig) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// DefaultPath is $XDG_CONFIG_HOME/ae/config.yaml or its platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ae", "config.yaml"), nil
}

func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) setDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Agent.Binary == "" {
		c.Agent.Binary = "dsktp-cmd-aegnt"
	}
	if c.Agent.GracePeriod == "" {
		c.Agent.GracePeriod = "5s"
	}
}
