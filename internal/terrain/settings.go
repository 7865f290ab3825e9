// Package terrain renders the noise field into a grid of biome colors.
package terrain

import (
	"math"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/biome"
)

// Parameter bounds. Values outside them are clamped, never rejected.
const (
	MinWorldSize = 0.001
	MaxWorldSize = 0.1
	MinElevation = 50.0
	MaxElevation = 400.0
	MinStep      = 6
	MaxStep      = 12
	MinOctaves   = 1
	MaxOctaves   = 8
	MinSeaLevel  = 0.0
	MaxSeaLevel  = 0.8
)

// Settings are the terrain parameters for one frame. They are replaced
// wholesale on every edit.
type Settings struct {
	WorldSize float64
	Elevation float64
	Step      int
	Octaves   int
	SeaLevel  float64
	Biome     biome.Biome
}

// DefaultSettings matches the initial panel values.
func DefaultSettings() Settings {
	return Settings{
		WorldSize: 0.02,
		Elevation: 255,
		Step:      6,
		Octaves:   4,
		SeaLevel:  0.3,
		Biome:     biome.Temperate,
	}
}

// Update is a partial edit of Settings. Nil fields are left unchanged.
type Update struct {
	WorldSize *float64
	Elevation *float64
	Step      *int
	Octaves   *int
	SeaLevel  *float64
	Biome     *string
}

// Empty reports whether u changes nothing.
func (u Update) Empty() bool {
	return u.WorldSize == nil && u.Elevation == nil && u.Step == nil &&
		u.Octaves == nil && u.SeaLevel == nil && u.Biome == nil
}

// Apply merges u into s and returns the clamped result. NaN values are
// skipped since they have no nearest bound; unknown biomes select the
// default palette.
func (s Settings) Apply(u Update) Settings {
	if u.WorldSize != nil {
		s.WorldSize = clampFloat(*u.WorldSize, s.WorldSize, MinWorldSize, MaxWorldSize)
	}
	if u.Elevation != nil {
		s.Elevation = clampFloat(*u.Elevation, s.Elevation, MinElevation, MaxElevation)
	}
	if u.Step != nil {
		s.Step = clampInt(*u.Step, MinStep, MaxStep)
	}
	if u.Octaves != nil {
		s.Octaves = clampInt(*u.Octaves, MinOctaves, MaxOctaves)
	}
	if u.SeaLevel != nil {
		s.SeaLevel = clampFloat(*u.SeaLevel, s.SeaLevel, MinSeaLevel, MaxSeaLevel)
	}
	if u.Biome != nil {
		s.Biome, _ = biome.ParseBiome(*u.Biome)
	}
	return s.Normalize()
}

// Normalize clamps every field into its valid range.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	s.WorldSize = clampFloat(s.WorldSize, def.WorldSize, MinWorldSize, MaxWorldSize)
	s.Elevation = clampFloat(s.Elevation, def.Elevation, MinElevation, MaxElevation)
	s.Step = clampInt(s.Step, MinStep, MaxStep)
	s.Octaves = clampInt(s.Octaves, MinOctaves, MaxOctaves)
	s.SeaLevel = clampFloat(s.SeaLevel, def.SeaLevel, MinSeaLevel, MaxSeaLevel)
	if !s.Biome.Valid() {
		s.Biome = biome.Default
	}
	return s
}

// Palette returns the active palette.
func (s Settings) Palette() biome.Palette {
	return biome.PaletteFor(s.Biome)
}

func clampFloat(v, fallback, lo, hi float64) float64 {
	if math.IsNaN(v) {
		v = fallback
	}
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// Float64 returns a pointer to v, for building Updates.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v, for building Updates.
func Int(v int) *int { return &v }

// String returns a pointer to v, for building Updates.
func String(v string) *string { return &v }
