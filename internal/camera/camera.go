// Package camera scrolls the view over a level larger than the screen.
package camera

import (
	"chosenoffset.com/forestadventure/internal/core/geom"
)

// Camera follows a target and keeps the view inside the level bounds.
type Camera struct {
	view   geom.Vec
	bounds geom.Rect
	target func() geom.Vec
	pos    geom.Vec // top-left corner of the view in world coords
}

// New creates a camera for a view of the given size.
func New(viewW, viewH float64) *Camera {
	return &Camera{view: geom.Vec{X: viewW, Y: viewH}}
}

// Track makes the camera follow target. A nil target stops tracking.
func (c *Camera) Track(target func() geom.Vec) {
	c.target = target
}

// SetBounds sets the level rectangle the view is clamped to.
func (c *Camera) SetBounds(r geom.Rect) {
	c.bounds = r
	c.clamp()
}

// Update centers the view on the target and clamps it to the bounds.
func (c *Camera) Update() {
	if c.target == nil {
		return
	}
	t := c.target()
	c.pos = geom.Vec{X: t.X - c.view.X/2, Y: t.Y - c.view.Y/2}
	c.clamp()
}

func (c *Camera) clamp() {
	if c.bounds.Empty() {
		return
	}
	c.pos.X = clampAxis(c.pos.X, c.bounds.X, c.bounds.W, c.view.X)
	c.pos.Y = clampAxis(c.pos.Y, c.bounds.Y, c.bounds.H, c.view.Y)
}

// clampAxis keeps [v, v+view] inside [lo, lo+size]. A level smaller than the view is
// centered.
func clampAxis(v, lo, size, view float64) float64 {
	if size <= view {
		return lo - (view-size)/2
	}
	if v < lo {
		return lo
	}
	if maxV := lo + size - view; v > maxV {
		return maxV
	}
	return v
}

// Position returns the top-left corner of the view in world coords.
func (c *Camera) Position() geom.Vec { return c.pos }
