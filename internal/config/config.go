// Package config handles server configuration loading.
package config

import "zonecraft/pkg/worldspace"

// Config holds everything the zone server needs at startup.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Generation GenerationConfig `yaml:"generation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig holds HTTP/WebSocket settings.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// GenerationConfig holds zone generation settings.
type GenerationConfig struct {
	// Seed is the master seed; 0 picks a random one at startup.
	Seed          int64             `yaml:"seed"`
	InstancesPath string            `yaml:"instances"`
	WorldSpace    worldspace.Config `yaml:"world_space"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Generation: GenerationConfig{
			InstancesPath: "configs/instances.yaml",
			WorldSpace:    worldspace.DefaultConfig(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
