package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/resonantdoghouse/p5-perlin-terrain/internal/engine"
)

// Browser wheel delta per notch; ebiten reports notches
const wheelNotch = 100

// Pointer turns mouse input into engine intents.
type Pointer struct {
	dragging     bool
	lastX, lastY int
}

// Update posts wheel, drag and pan intents for this tick. Presses that land
// on the panel are left to the panel.
func (p *Pointer) Update(e *engine.Engine, overPanel func(x, y int) bool) {
	x, y := ebiten.CursorPosition()

	// Zoom toward the cursor
	if _, dy := ebiten.Wheel(); dy != 0 && !overPanel(x, y) {
		e.Post(engine.WheelIntent{
			Delta:   -dy * wheelNotch,
			AnchorX: float64(x),
			AnchorY: float64(y),
		})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !overPanel(x, y) {
		p.dragging = true
		p.lastX, p.lastY = x, y
		e.Post(engine.DragIntent{Active: true})
		return
	}

	if !p.dragging {
		return
	}

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.dragging = false
		e.Post(engine.DragIntent{Active: false})
		return
	}

	// Delta since last tick; the engine drops it when the cursor is off canvas
	dx, dy := x-p.lastX, y-p.lastY
	p.lastX, p.lastY = x, y
	if dx != 0 || dy != 0 {
		e.Post(engine.PanIntent{
			DX: float64(dx),
			DY: float64(dy),
			X:  float64(x),
			Y:  float64(y),
		})
	}
}
