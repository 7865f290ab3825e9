package terrain

import (
	"image/png"
	"io"
)

// WritePNG encodes the grid as PNG. With upscale set every cell becomes a
// Step x Step block, otherwise one pixel.
func (g *Grid) WritePNG(w io.Writer, upscale bool) error {
	if upscale {
		return png.Encode(w, g.Upscale())
	}
	return png.Encode(w, g.Image())
}
