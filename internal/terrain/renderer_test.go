package terrain

import (
	"math"
	"testing"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/biome"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/camera"
	"github.com/resonantdoghouse/p5-perlin-terrain/internal/noise"
)

// sampleField records sample points and returns a fixed value.
type sampleField struct {
	value  float64
	points [][2]float64
}

func (f *sampleField) Noise(x, y float64) float64 {
	f.points = append(f.points, [2]float64{x, y})
	return f.value
}

func paletteHas(p biome.Palette, c biome.Color) bool {
	for _, pc := range p.Colors() {
		if pc == c {
			return true
		}
	}
	return false
}

func TestRenderSmallCanvas(t *testing.T) {
	s := Settings{WorldSize: 0.02, Elevation: 255, Step: 6, Octaves: 1, SeaLevel: 0.3, Biome: biome.Temperate}
	g := NewGrid(12, 12, s.Step)
	if g.Cols != 2 || g.Rows != 2 {
		t.Fatalf("grid = %dx%d, want 2x2", g.Cols, g.Rows)
	}

	NewRenderer(noise.NewPerlin(1)).Render(s, camera.New(), g)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if c := g.At(col, row); !paletteHas(s.Palette(), c) {
				t.Errorf("cell (%d,%d) = %v, not a palette color", col, row, c)
			}
		}
	}
}

func TestRenderSamplePoints(t *testing.T) {
	f := &sampleField{value: 0.5}
	s := Settings{WorldSize: 0.02, Elevation: 255, Step: 6, Octaves: 1, SeaLevel: 0.3}
	cam := camera.New()
	cam.Position = camera.Vec{X: 6, Y: -12}
	cam.Zoom = 2
	cam.Target = 2

	g := NewGrid(12, 6, 6)
	NewRenderer(f).Render(s, cam, g)

	// Cells (0,0) and (1,0) sit at screen x 0 and 6.
	want := [][2]float64{
		{(0 - 6) * 0.01, (0 + 12) * 0.01},
		{(6 - 6) * 0.01, (0 + 12) * 0.01},
	}
	if len(f.points) != len(want) {
		t.Fatalf("sampled %d points, want %d", len(f.points), len(want))
	}
	for i := range want {
		if math.Abs(f.points[i][0]-want[i][0]) > 1e-12 || math.Abs(f.points[i][1]-want[i][1]) > 1e-12 {
			t.Errorf("point %d = %v, want %v", i, f.points[i], want[i])
		}
	}
	// 0.5 * 255 = 127.5 is grass.
	if got := g.At(0, 0); got != s.Palette().Grass {
		t.Errorf("cell color = %v, want grass", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	s := DefaultSettings()
	a := NewGrid(120, 90, s.Step)
	b := NewGrid(120, 90, s.Step)
	NewRenderer(noise.NewPerlin(77)).Render(s, camera.New(), a)
	NewRenderer(noise.NewPerlin(77)).Render(s, camera.New(), b)

	for row := 0; row < a.Rows; row++ {
		for col := 0; col < a.Cols; col++ {
			if a.At(col, row) != b.At(col, row) {
				t.Fatalf("cell (%d,%d) differs between identical renders", col, row)
			}
		}
	}
}

func TestRenderResizesForStep(t *testing.T) {
	g := NewGrid(100, 50, 6)
	s := DefaultSettings()
	s.Step = 10
	NewRenderer(&sampleField{value: 0.1}).Render(s, camera.New(), g)
	if g.Step != 10 || g.Cols != 10 || g.Rows != 5 {
		t.Errorf("grid = %dx%d step %d, want 10x5 step 10", g.Cols, g.Rows, g.Step)
	}
	if got := g.At(9, 4); got != s.Palette().Water {
		t.Errorf("cell = %v, want water", got)
	}
}

func TestHeightStaysFinite(t *testing.T) {
	r := NewRenderer(noise.NewSimplex(3))
	cam := camera.New()
	for _, z := range []float64{camera.MinZoom, 1, camera.MaxZoom} {
		cam.Zoom = z
		for _, sea := range []float64{0, 0.8} {
			s := DefaultSettings().Apply(Update{SeaLevel: Float64(sea), Octaves: Int(8)})
			for i := 0; i < 200; i++ {
				h := r.Height(s, cam, float64(i*37), float64(i*-11))
				if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 || h > s.Elevation {
					t.Fatalf("Height = %v out of [0, %v]", h, s.Elevation)
				}
			}
		}
	}
}
