// Package animation advances sprite sheet frames over time and applies them to
// drawable sprites and collider boxes.
package animation

import (
	"image"

	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/render"
)

// Frame is the constraint for values a Sequence can hold.
type Frame interface {
	Valid() bool
}

// ImageFrame is one picture cut out of a texture.
type ImageFrame struct {
	Texture render.Image
	Rect    image.Rectangle
	// Center is the frame center relative to the top-left corner of Rect.
	Center geom.Vec
	Mirror bool
}

// NewImageFrame creates a frame whose center is the middle of rect.
func NewImageFrame(texture render.Image, rect image.Rectangle, mirror bool) ImageFrame {
	return ImageFrame{
		Texture: texture,
		Rect:    rect,
		Center:  geom.Vec{X: float64(rect.Dx()) / 2, Y: float64(rect.Dy()) / 2},
		Mirror:  mirror,
	}
}

// Valid reports whether the frame has a texture and a positive size.
func (f ImageFrame) Valid() bool {
	return f.Texture != nil && f.Rect.Dx() > 0 && f.Rect.Dy() > 0
}

// ColliderFrame is one collision box of a collider animation.
type ColliderFrame struct {
	Size   geom.Vec
	Center geom.Vec
}

// NewColliderFrame creates a collider frame centered on its own middle.
func NewColliderFrame(size geom.Vec) ColliderFrame {
	return ColliderFrame{Size: size, Center: size.Scale(0.5)}
}

// Valid reports whether the box has a positive size.
func (f ColliderFrame) Valid() bool {
	return f.Size.X > 0 && f.Size.Y > 0
}
