package terrain

import (
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/camera"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/noise"
)

// Renderer fills grids from a noise field.
type Renderer struct {
	Field noise.Field
}

// NewRenderer returns a renderer sampling f.
func NewRenderer(f noise.Field) *Renderer {
	return &Renderer{Field: f}
}

// Height returns the terrain height under a screen point.
func (r *Renderer) Height(s Settings, cam *camera.Camera, sx, sy float64) float64 {
	nx, ny := cam.NoisePoint(sx, sy, s.WorldSize)
	return s.Elevation * noise.Fractal(r.Field, nx, ny, s.Octaves)
}

// Render regenerates every cell of g. The grid is resized first if the step
// in s differs from the one it was allocated with.
func (r *Renderer) Render(s Settings, cam *camera.Camera, g *Grid) {
	s = s.Normalize()
	g.Resize(g.Width, g.Height, s.Step)
	palette := s.Palette()

	for row := 0; row < g.Rows; row++ {
		sy := float64(row * s.Step)
		for col := 0; col < g.Cols; col++ {
			sx := float64(col * s.Step)
			g.Set(col, row, palette.Color(r.Height(s, cam, sx, sy), s.SeaLevel))
		}
	}
}
