package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveKeepsExplicitFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.json")
	if err := os.WriteFile(path, []byte(`{"octaves": 7, "seed": 3, "biome": "Desert"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	configPath := Bind(fs, cfg)
	if err := fs.Parse([]string{"-config", path, "-octaves", "2", "-noise", "simplex"}); err != nil {
		t.Fatal(err)
	}
	if *configPath != path {
		t.Fatalf("config path = %q", *configPath)
	}
	if err := Resolve(fs, cfg, *configPath); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if cfg.Octaves != 2 || cfg.Noise != "simplex" {
		t.Errorf("explicit flags lost: octaves %d noise %q", cfg.Octaves, cfg.Noise)
	}
	if cfg.Seed != 3 || cfg.Biome != "Desert" {
		t.Errorf("file values lost: seed %d biome %q", cfg.Seed, cfg.Biome)
	}
}

func TestResolveWithoutFile(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	Bind(fs, cfg)
	if err := fs.Parse([]string{"-width", "320"}); err != nil {
		t.Fatal(err)
	}
	if err := Resolve(fs, cfg, filepath.Join(t.TempDir(), "missing.json")); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 720 {
		t.Errorf("size = %dx%d, want 320x720", cfg.Width, cfg.Height)
	}
}
