package engine

import (
	"time"

	"zonecraft/pkg/worldspace"
)

// Config holds the zone service start-up parameters.
type Config struct {
	// Seed is the master seed. Every zone seed is drawn from it, so the same
	// master seed replays the same sequence of zones.
	Seed       int64
	WorldSpace worldspace.Config
}

// NewConfig returns the default config with a random master seed.
func NewConfig() Config {
	return Config{
		Seed:       time.Now().UnixNano(),
		WorldSpace: worldspace.DefaultConfig(),
	}
}
