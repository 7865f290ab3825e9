// Package config holds the viewer configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/biome"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/camera"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/noise"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/terrain"
)

// Config holds the viewer configuration.
type Config struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Seed   int64  `json:"seed"`  // 0 picks a time-based seed
	Noise  string `json:"noise"` // "perlin" or "simplex"

	WorldSize float64 `json:"world_size"`
	Elevation float64 `json:"elevation"`
	Step      int     `json:"step"`
	Octaves   int     `json:"octaves"`
	SeaLevel  float64 `json:"sea_level"`
	Biome     string  `json:"biome"`

	ResizeDelay      Duration `json:"resize_delay"`
	WheelSensitivity float64  `json:"wheel_sensitivity"`
	SnapshotDir      string   `json:"snapshot_dir"`
	ShowPanel        bool     `json:"show_panel"`
	LogLevel         string   `json:"log_level"`
}

// Duration is a time.Duration written as a string ("200ms") in JSON.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	s := terrain.DefaultSettings()
	return &Config{
		Width:            1280,
		Height:           720,
		Noise:            noise.KindPerlin,
		WorldSize:        s.WorldSize,
		Elevation:        s.Elevation,
		Step:             s.Step,
		Octaves:          s.Octaves,
		SeaLevel:         s.SeaLevel,
		Biome:            s.Biome.String(),
		ResizeDelay:      Duration{200 * time.Millisecond},
		WheelSensitivity: camera.WheelSensitivity,
		SnapshotDir:      ".",
		ShowPanel:        true,
		LogLevel:         "info",
	}
}

// Load reads a JSON config file on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["noise"] {
		cfg.Noise = fromFile.Noise
	}
	if !explicitFlags["world-size"] {
		cfg.WorldSize = fromFile.WorldSize
	}
	if !explicitFlags["elevation"] {
		cfg.Elevation = fromFile.Elevation
	}
	if !explicitFlags["step"] {
		cfg.Step = fromFile.Step
	}
	if !explicitFlags["octaves"] {
		cfg.Octaves = fromFile.Octaves
	}
	if !explicitFlags["sea-level"] {
		cfg.SeaLevel = fromFile.SeaLevel
	}
	if !explicitFlags["biome"] {
		cfg.Biome = fromFile.Biome
	}
	if !explicitFlags["resize-delay"] {
		cfg.ResizeDelay = fromFile.ResizeDelay
	}
	if !explicitFlags["wheel-sensitivity"] {
		cfg.WheelSensitivity = fromFile.WheelSensitivity
	}
	if !explicitFlags["snapshot-dir"] {
		cfg.SnapshotDir = fromFile.SnapshotDir
	}
	if !explicitFlags["panel"] {
		cfg.ShowPanel = fromFile.ShowPanel
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}

// Validate clamps values into range and replaces unusable ones with
// defaults. It returns one warning per corrected field.
func (c *Config) Validate() []string {
	var warnings []string
	def := DefaultConfig()

	if c.Width <= 0 {
		warnings = append(warnings, fmt.Sprintf("width %d, using %d", c.Width, def.Width))
		c.Width = def.Width
	}
	if c.Height <= 0 {
		warnings = append(warnings, fmt.Sprintf("height %d, using %d", c.Height, def.Height))
		c.Height = def.Height
	}
	if _, err := noise.New(c.Noise, 0); err != nil {
		warnings = append(warnings, fmt.Sprintf("noise %q, using %s", c.Noise, noise.KindPerlin))
		c.Noise = noise.KindPerlin
	}
	if _, ok := biome.ParseBiome(c.Biome); !ok {
		warnings = append(warnings, fmt.Sprintf("biome %q, using %s", c.Biome, biome.Default))
		c.Biome = biome.Default.String()
	}
	if c.ResizeDelay.Duration < 0 {
		warnings = append(warnings, fmt.Sprintf("resize_delay %s, using %s", c.ResizeDelay, def.ResizeDelay))
		c.ResizeDelay = def.ResizeDelay
	}
	if c.WheelSensitivity <= 0 {
		warnings = append(warnings, fmt.Sprintf("wheel_sensitivity %v, using %v", c.WheelSensitivity, def.WheelSensitivity))
		c.WheelSensitivity = def.WheelSensitivity
	}

	s := c.Settings()
	c.WorldSize, c.Elevation, c.Step, c.Octaves, c.SeaLevel = s.WorldSize, s.Elevation, s.Step, s.Octaves, s.SeaLevel
	return warnings
}

// Settings returns the initial terrain settings, clamped.
func (c *Config) Settings() terrain.Settings {
	b, _ := biome.ParseBiome(c.Biome)
	return terrain.Settings{
		WorldSize: c.WorldSize,
		Elevation: c.Elevation,
		Step:      c.Step,
		Octaves:   c.Octaves,
		SeaLevel:  c.SeaLevel,
		Biome:     b,
	}.Normalize()
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
