// Package camera maps screen cells to noise space and animates zoom toward
// a fixed screen anchor.
package camera

import "math"

const (
	MinZoom = 0.1
	MaxZoom = 5.0

	// Smoothing is the fraction of the remaining zoom distance covered each
	// tick. It is per tick, not per second.
	Smoothing = 0.1

	// SnapEpsilon is the distance below which zoom jumps to the target.
	SnapEpsilon = 0.001

	// WheelSensitivity scales wheel deltas into zoom ratios.
	WheelSensitivity = 0.001
)

// Vec is a point or offset in screen pixels.
type Vec struct {
	X, Y float64
}

// Camera holds the pan offset and the current and target zoom.
type Camera struct {
	Position Vec
	Zoom     float64
	Target   float64
	Anchor   Vec
}

// New returns a camera at the origin with zoom 1.
func New() *Camera {
	return &Camera{Zoom: 1, Target: 1}
}

// ClampZoom limits z to [MinZoom, MaxZoom].
func ClampZoom(z float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// WheelTarget returns the zoom target after a wheel event. Negative deltas
// zoom in.
func WheelTarget(current, delta, sensitivity float64) float64 {
	return ClampZoom(current * (1 - delta*sensitivity))
}

// SetTarget sets the zoom target and the screen point that must stay put
// while zooming. Non-finite targets are ignored.
func (c *Camera) SetTarget(zoom, anchorX, anchorY float64) {
	if math.IsNaN(zoom) {
		return
	}
	c.Target = ClampZoom(zoom)
	if !math.IsNaN(anchorX) && !math.IsInf(anchorX, 0) && !math.IsNaN(anchorY) && !math.IsInf(anchorY, 0) {
		c.Anchor = Vec{X: anchorX, Y: anchorY}
	}
}

// CenterAnchor moves the zoom anchor to the middle of a width x height canvas.
func (c *Camera) CenterAnchor(width, height int) {
	c.Anchor = Vec{X: float64(width) / 2, Y: float64(height) / 2}
}

// Animating reports whether the zoom has not reached its target yet.
func (c *Camera) Animating() bool {
	return c.Zoom != c.Target
}

// Step advances the zoom one tick and corrects the pan so the anchor keeps
// its world position. It reports whether the zoom is still animating.
func (c *Camera) Step() bool {
	if !c.Animating() {
		return false
	}

	old := c.Zoom
	if math.Abs(c.Zoom-c.Target) > SnapEpsilon {
		c.Zoom += (c.Target - c.Zoom) * Smoothing
	} else {
		c.Zoom = c.Target
	}

	factor := c.Zoom / old
	c.Position.X = c.Anchor.X - (c.Anchor.X-c.Position.X)*factor
	c.Position.Y = c.Anchor.Y - (c.Anchor.Y-c.Position.Y)*factor

	return c.Animating()
}

// Pan moves the camera by (dx, dy) when the pointer (px, py) is inside the
// width x height canvas. Deltas from outside the canvas are dropped.
func (c *Camera) Pan(dx, dy, px, py float64, width, height int) bool {
	if px < 0 || px > float64(width) || py < 0 || py > float64(height) {
		return false
	}
	if math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return false
	}
	c.Position.X += dx
	c.Position.Y += dy
	return dx != 0 || dy != 0
}

// ScreenToWorld removes the pan offset from a screen point.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx - c.Position.X, sy - c.Position.Y
}

// EffectiveScale is the noise-space step per screen pixel. Zooming in shrinks
// it, magnifying the same features.
func (c *Camera) EffectiveScale(worldSize float64) float64 {
	return worldSize / c.Zoom
}

// NoisePoint maps a screen point to the coordinates the noise is sampled at.
func (c *Camera) NoisePoint(sx, sy, worldSize float64) (float64, float64) {
	wx, wy := c.ScreenToWorld(sx, sy)
	scale := c.EffectiveScale(worldSize)
	return wx * scale, wy * scale
}
