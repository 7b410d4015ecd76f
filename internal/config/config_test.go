package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Generation.Seed != 0 {
		t.Errorf("expected random seed (0), got %d", cfg.Generation.Seed)
	}
	if cfg.Generation.WorldSpace.TileSize.X != 32 {
		t.Errorf("expected 32px tiles, got %v", cfg.Generation.WorldSpace.TileSize)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoad_FileThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zonecraft.yaml")
	content := `
server:
  port: "9000"
generation:
  seed: 1234
  instances: data/instances.yaml
  world_space:
    tile_size: {x: 16, y: 16}
logging:
  level: warn
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", path, "-seed", "99", "-debug"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("expected port from file, got %s", cfg.Server.Port)
	}
	if cfg.Generation.Seed != 99 {
		t.Errorf("flag should override seed, got %d", cfg.Generation.Seed)
	}
	if cfg.Generation.InstancesPath != "data/instances.yaml" {
		t.Errorf("instances path = %s", cfg.Generation.InstancesPath)
	}
	if cfg.Generation.WorldSpace.TileSize.X != 16 {
		t.Errorf("tile size = %v, want 16", cfg.Generation.WorldSpace.TileSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("-debug should force debug level, got %s", cfg.Logging.Level)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	_ = fs.Parse([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")})

	if _, err := Load(flags); err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Server.Port = "7777"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := RegisterFlags(fs)
	_ = fs.Parse([]string{"-config", path})
	loaded, err := Load(flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != "7777" {
		t.Errorf("port = %s, want 7777", loaded.Server.Port)
	}
}
