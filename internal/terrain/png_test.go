package terrain

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/biome"
)

func TestWritePNG(t *testing.T) {
	g := NewGrid(18, 12, 6)
	g.Set(2, 1, biome.Color{R: 10, G: 20, B: 30})

	for _, upscale := range []bool{false, true} {
		var buf bytes.Buffer
		if err := g.WritePNG(&buf, upscale); err != nil {
			t.Fatalf("WritePNG(upscale=%v): %v", upscale, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		scale := 1
		if upscale {
			scale = g.Step
		}
		b := img.Bounds()
		if b.Dx() != g.Cols*scale || b.Dy() != g.Rows*scale {
			t.Errorf("upscale=%v: bounds %v", upscale, b)
		}
		r, gg, bl, a := img.At(2*scale, 1*scale).RGBA()
		if r>>8 != 10 || gg>>8 != 20 || bl>>8 != 30 || a>>8 != 255 {
			t.Errorf("upscale=%v: pixel = %d %d %d %d", upscale, r>>8, gg>>8, bl>>8, a>>8)
		}
	}
}
