package terrain

import (
	"image"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/biome"
)

// Grid is the frame buffer: one color per terrain cell, row-major.
type Grid struct {
	Width, Height int // canvas size in pixels
	Cols, Rows    int
	Step          int

	cells []biome.Color
	pix   []byte
}

// NewGrid allocates a grid covering a width x height canvas with step-sized
// cells.
func NewGrid(width, height, step int) *Grid {
	g := &Grid{}
	g.Resize(width, height, step)
	return g
}

// Dims returns the number of columns and rows covering a canvas.
func Dims(width, height, step int) (cols, rows int) {
	if step < 1 {
		step = 1
	}
	return ceilDiv(max(width, 0), step), ceilDiv(max(height, 0), step)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Resize reallocates the cells when the canvas or step changed. It reports
// whether anything was reallocated.
func (g *Grid) Resize(width, height, step int) bool {
	if step < 1 {
		step = 1
	}
	if g.cells != nil && g.Width == width && g.Height == height && g.Step == step {
		return false
	}
	g.Width, g.Height, g.Step = width, height, step
	g.Cols, g.Rows = Dims(width, height, step)
	g.cells = make([]biome.Color, g.Cols*g.Rows)
	g.pix = nil
	return true
}

// At returns the color of a cell.
func (g *Grid) At(col, row int) biome.Color {
	return g.cells[row*g.Cols+col]
}

// Set writes the color of a cell.
func (g *Grid) Set(col, row int, c biome.Color) {
	g.cells[row*g.Cols+col] = c
}

// Pixels returns the grid as opaque RGBA bytes, one pixel per cell. The
// slice is reused by the next call.
func (g *Grid) Pixels() []byte {
	if len(g.pix) != 4*len(g.cells) {
		g.pix = make([]byte, 4*len(g.cells))
	}
	for i, c := range g.cells {
		p := g.pix[4*i : 4*i+4 : 4*i+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 255
	}
	return g.pix
}

// Image returns a copy of the grid with one pixel per cell.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	copy(img.Pix, g.Pixels())
	return img
}

// Upscale returns a copy of the grid with every cell drawn as a Step x Step
// block, the same nearest-neighbor scaling the viewer uses.
func (g *Grid) Upscale() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Cols*g.Step, g.Rows*g.Step))
	for y := 0; y < img.Rect.Dy(); y++ {
		row := y / g.Step
		for x := 0; x < img.Rect.Dx(); x++ {
			img.SetRGBA(x, y, g.At(x/g.Step, row).RGBA())
		}
	}
	return img
}
