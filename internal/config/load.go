package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load builds the config with priority: defaults < file < env < flags.
// A missing default file is fine; an explicit path that fails is not.
func Load(flags *Flags) (*Config, error) {
	cfg := Default()

	path := ""
	if flags != nil {
		path = flags.ConfigPath
	}
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if port := os.Getenv("ZONE_PORT"); port != "" {
		cfg.Server.Port = port
	}

	flags.apply(cfg)
	return cfg, nil
}

func findConfigFile() string {
	for _, path := range []string{"./zonecraft.yaml", "./configs/zonecraft.yaml"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFromFile merges a YAML file over the values already in cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// SaveTo writes the config to path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
