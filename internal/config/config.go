package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultPrompt = "Please enter your command (use help if you don't remember): "

// Load reads the labs configuration. The path comes from
// LABS_CONFIG_PATH, defaulting to configs/labs.yaml; a missing file is
// not an error and yields the defaults.
func Load() (*Config, error) {
	path := os.Getenv("LABS_CONFIG_PATH")
	if path == "" {
		path = "configs/labs.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Session.Prompt == "" {
		cfg.Session.Prompt = defaultPrompt
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = 8084
	}
	if cfg.Reader.MaxEntries == 0 {
		cfg.Reader.MaxEntries = 25
	}
}

func (c *Config) Validate() error {
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("api.port %d is out of range", c.API.Port)
	}
	if c.Reader.MaxEntries < 1 {
		return fmt.Errorf("reader.max_entries must be positive, got %d", c.Reader.MaxEntries)
	}
	return nil
}
