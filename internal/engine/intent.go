package engine

import "github.com/resonantdoghouse/p5-perlin-terrain/internal/terrain"

// Intent is an input event queued for the next tick.
type Intent interface {
	intent()
}

// ParameterUpdate is a partial settings edit from the panel or keyboard.
type ParameterUpdate struct {
	terrain.Update
}

// ZoomIntent sets an absolute zoom target, e.g. from the zoom slider.
type ZoomIntent struct {
	Target           float64
	AnchorX, AnchorY float64
}

// WheelIntent zooms relative to the current target. Negative deltas zoom in.
type WheelIntent struct {
	Delta            float64
	AnchorX, AnchorY float64
}

// PanIntent moves the camera by a pointer delta. X and Y are the pointer
// position, used to drop drags that left the canvas.
type PanIntent struct {
	DX, DY float64
	X, Y   float64
}

// DragIntent marks the start or end of a drag.
type DragIntent struct {
	Active bool
}

// ResizeIntent reports a new canvas size. It is debounced before the grid is
// reallocated.
type ResizeIntent struct {
	Width, Height int
}

// ReseedIntent replaces the noise field with a new seed.
type ReseedIntent struct {
	Seed int64
}

func (ParameterUpdate) intent() {}
func (ZoomIntent) intent()      {}
func (WheelIntent) intent()     {}
func (PanIntent) intent()       {}
func (DragIntent) intent()      {}
func (ResizeIntent) intent()    {}
func (ReseedIntent) intent()    {}
