package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/terrain"
)

// Presenter keeps the last rendered grid on the GPU. Each cell is one texel;
// drawing scales it up by the block size.
type Presenter struct {
	Frame      *ebiten.Image
	Cols, Rows int
	Step       int
	DrawOpts   *ebiten.DrawImageOptions
}

func NewPresenter() *Presenter {
	return &Presenter{
		DrawOpts: &ebiten.DrawImageOptions{},
	}
}

// Upload copies a freshly rendered grid into the frame texture.
func (p *Presenter) Upload(grid *terrain.Grid) {
	if grid.Cols == 0 || grid.Rows == 0 {
		p.Cols, p.Rows = 0, 0
		return
	}

	// Reallocate on size change
	if p.Frame == nil || p.Cols != grid.Cols || p.Rows != grid.Rows {
		if p.Frame != nil {
			p.Frame.Deallocate()
		}
		p.Frame = ebiten.NewImage(grid.Cols, grid.Rows)
		p.Cols, p.Rows = grid.Cols, grid.Rows
	}
	p.Step = grid.Step
	p.Frame.WritePixels(grid.Pixels())
}

func (p *Presenter) Draw(screen *ebiten.Image) {
	if p.Frame == nil || p.Cols == 0 || p.Rows == 0 {
		return
	}

	p.DrawOpts.GeoM.Reset()
	p.DrawOpts.GeoM.Scale(float64(p.Step), float64(p.Step))
	p.DrawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(p.Frame, p.DrawOpts)
}
