// Package biome turns terrain heights into palette colors.
package biome

import (
	"image/color"
	"strings"
)

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

// RGBA converts c to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Band is one elevation zone of a palette.
type Band int

const (
	Water Band = iota
	Sand
	Grass
	Mountain
	Snow
)

var bandNames = [...]string{"water", "sand", "grass", "mountain", "snow"}

func (b Band) String() string {
	if b < Water || b > Snow {
		return "unknown"
	}
	return bandNames[b]
}

// Palette holds one color per band.
type Palette struct {
	Water    Color
	Sand     Color
	Grass    Color
	Mountain Color
	Snow     Color
}

// Band returns the palette color for b. Unknown bands get grass.
func (p Palette) Band(b Band) Color {
	switch b {
	case Water:
		return p.Water
	case Sand:
		return p.Sand
	case Mountain:
		return p.Mountain
	case Snow:
		return p.Snow
	}
	return p.Grass
}

// Color classifies height and returns its color.
func (p Palette) Color(height, seaLevel float64) Color {
	return p.Band(Classify(height, seaLevel))
}

// Colors lists the five palette entries in band order.
func (p Palette) Colors() [5]Color {
	return [5]Color{p.Water, p.Sand, p.Grass, p.Mountain, p.Snow}
}

// Biome selects a palette.
type Biome int

const (
	Temperate Biome = iota
	Desert
	Snowy
)

// Default is used for unknown biome names and values.
const Default = Temperate

var biomeNames = [...]string{"Temperate", "Desert", "Snow"}

var palettes = [...]Palette{
	Temperate: {
		Water:    Color{69, 123, 157},
		Sand:     Color{76, 70, 50},
		Grass:    Color{0, 111, 50},
		Mountain: Color{43, 45, 66},
		Snow:     Color{255, 255, 255},
	},
	Desert: {
		Water:    Color{60, 100, 140},
		Sand:     Color{210, 180, 140},
		Grass:    Color{200, 150, 80},
		Mountain: Color{160, 82, 45},
		Snow:     Color{255, 240, 200},
	},
	Snowy: {
		Water:    Color{100, 140, 180},
		Sand:     Color{200, 220, 240},
		Grass:    Color{220, 240, 250},
		Mountain: Color{180, 190, 200},
		Snow:     Color{255, 255, 255},
	},
}

// Valid reports whether b names a known biome.
func (b Biome) Valid() bool {
	return b >= Temperate && b <= Snowy
}

func (b Biome) String() string {
	if !b.Valid() {
		return biomeNames[Default]
	}
	return biomeNames[b]
}

// Next cycles through the biomes in declaration order.
func (b Biome) Next() Biome {
	if !b.Valid() {
		return Default
	}
	return (b + 1) % Biome(len(biomeNames))
}

// Biomes lists every known biome.
func Biomes() []Biome {
	return []Biome{Temperate, Desert, Snowy}
}

// ParseBiome looks up a biome by name, ignoring case. Unknown names return
// Default and false.
func ParseBiome(name string) (Biome, bool) {
	for i, n := range biomeNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Biome(i), true
		}
	}
	return Default, false
}

// PaletteFor returns the palette of b, or the default palette when b is not
// a known biome.
func PaletteFor(b Biome) Palette {
	if !b.Valid() {
		return palettes[Default]
	}
	return palettes[b]
}
