package animation

import (
	"image/color"

	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/render"
)

// ColliderColor is used when collider boxes are drawn for debugging.
var ColliderColor = color.RGBA{255, 0, 0, 255}

// Collider plays a sequence of collision boxes. Boxes are centered on the position.
type Collider struct {
	transform
	seq     *Sequence[ColliderFrame]
	current ColliderFrame
	visible bool
}

// NewCollider wraps seq.
func NewCollider(seq *Sequence[ColliderFrame]) *Collider {
	c := &Collider{transform: newTransform(), seq: seq}
	c.applyFrame()
	return c
}

// SetVisible toggles drawing the box outline in DrawTo.
func (c *Collider) SetVisible(visible bool) { c.visible = visible }

func (c *Collider) Start() {
	c.seq.Start()
	c.applyFrame()
}

func (c *Collider) Stop() {
	c.seq.Stop()
	c.applyFrame()
}

func (c *Collider) Update(dt float64) {
	if c.seq.IsEmpty() {
		return
	}
	c.seq.Update(dt)
	c.applyFrame()
}

func (c *Collider) applyFrame() {
	if c.seq.IsEmpty() {
		return
	}
	c.current = c.seq.Current()
	c.origin = c.current.Center
}

// Bounds returns the world bounds of the current box.
func (c *Collider) Bounds() geom.Rect {
	return c.bounds(c.current.Size.X, c.current.Size.Y)
}

// DrawTo strokes the box outline when the collider is visible.
func (c *Collider) DrawTo(target render.Image) {
	if !c.visible {
		return
	}
	b := c.Bounds()
	if b.Empty() {
		return
	}
	target.StrokeRect(float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, ColliderColor)
}

func (c *Collider) SetPosition(p geom.Vec)  { c.position = p }
func (c *Collider) SetRotation(deg float64) { c.rotation = deg }
func (c *Collider) IsCompleted() bool       { return c.seq.IsCompleted() }
func (c *Collider) IsRunning() bool         { return c.seq.IsRunning() }

// Intersects reports whether both boxes overlap.
func (c *Collider) Intersects(other *Collider) bool {
	return c.Bounds().Intersects(other.Bounds())
}
