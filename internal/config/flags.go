package config

import (
	"flag"
	"fmt"
)

// DefaultPath is the config file read when -config is not given.
const DefaultPath = "terrain.json"

// Bind registers the config flags on fs, writing into cfg. It returns the
// -config path flag.
func Bind(fs *flag.FlagSet, cfg *Config) *string {
	path := fs.String("config", DefaultPath, "path to a JSON config file")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "canvas width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "canvas height in pixels")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "noise seed (0 = time based)")
	fs.StringVar(&cfg.Noise, "noise", cfg.Noise, "noise field: perlin or simplex")
	fs.Float64Var(&cfg.WorldSize, "world-size", cfg.WorldSize, "noise scale per pixel")
	fs.Float64Var(&cfg.Elevation, "elevation", cfg.Elevation, "height multiplier")
	fs.IntVar(&cfg.Step, "step", cfg.Step, "block size in pixels")
	fs.IntVar(&cfg.Octaves, "octaves", cfg.Octaves, "fractal noise layers")
	fs.Float64Var(&cfg.SeaLevel, "sea-level", cfg.SeaLevel, "water fraction of the height scale")
	fs.StringVar(&cfg.Biome, "biome", cfg.Biome, "palette: Temperate, Desert or Snow")
	fs.DurationVar(&cfg.ResizeDelay.Duration, "resize-delay", cfg.ResizeDelay.Duration, "quiet time before a resize regenerates")
	fs.Float64Var(&cfg.WheelSensitivity, "wheel-sensitivity", cfg.WheelSensitivity, "zoom change per wheel unit")
	fs.StringVar(&cfg.SnapshotDir, "snapshot-dir", cfg.SnapshotDir, "directory for PNG snapshots")
	fs.BoolVar(&cfg.ShowPanel, "panel", cfg.ShowPanel, "show the parameter panel at start")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	return path
}

// Resolve merges the config file at path into cfg, keeping every flag that
// was set explicitly on fs. fs must already be parsed.
func Resolve(fs *flag.FlagSet, cfg *Config, path string) error {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	fromFile, err := Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	Merge(cfg, fromFile, explicit)
	return nil
}
