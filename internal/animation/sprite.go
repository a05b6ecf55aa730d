package animation

import (
	"image"
	"math"

	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/render"
)

// transform places a local w x h box in the world.
type transform struct {
	position geom.Vec
	origin   geom.Vec
	rotation float64 // degrees
	scale    geom.Vec
}

func newTransform() transform {
	return transform{scale: geom.Vec{X: 1, Y: 1}}
}

func (t *transform) apply(local geom.Vec) geom.Vec {
	return local.Sub(t.origin).Mul(t.scale).Rotate(t.rotation).Add(t.position)
}

// bounds returns the world axis-aligned bounds of a local box of the given size.
func (t *transform) bounds(w, h float64) geom.Rect {
	if w <= 0 || h <= 0 {
		return geom.Rect{}
	}
	return geom.Bounds(
		t.apply(geom.Vec{}),
		t.apply(geom.Vec{X: w}),
		t.apply(geom.Vec{Y: h}),
		t.apply(geom.Vec{X: w, Y: h}),
	)
}

func (t *transform) geoM() render.GeoM {
	var g render.GeoM
	g.Translate(-t.origin.X, -t.origin.Y)
	g.Scale(t.scale.X, t.scale.Y)
	g.Rotate(t.rotation * math.Pi / 180)
	g.Translate(t.position.X, t.position.Y)
	return g
}

// Sprite draws one texture region with a position, origin, rotation and scale.
type Sprite struct {
	transform
	texture render.Image
	rect    image.Rectangle
	mirror  bool
}

// NewSprite creates an empty sprite with unit scale.
func NewSprite() *Sprite {
	return &Sprite{transform: newTransform()}
}

// SetFrame switches the texture region the sprite shows.
func (s *Sprite) SetFrame(f ImageFrame) {
	s.texture = f.Texture
	s.rect = f.Rect
	s.mirror = f.Mirror
}

func (s *Sprite) SetPosition(p geom.Vec)       { s.position = p }
func (s *Sprite) SetOrigin(o geom.Vec)         { s.origin = o }
func (s *Sprite) SetRotation(deg float64)      { s.rotation = deg }
func (s *Sprite) SetScale(scale geom.Vec)      { s.scale = scale }
func (s *Sprite) Position() geom.Vec           { return s.position }
func (s *Sprite) Rotation() float64            { return s.rotation }
func (s *Sprite) TextureRect() image.Rectangle { return s.rect }

// GlobalBounds returns the world bounds of the sprite.
func (s *Sprite) GlobalBounds() geom.Rect {
	return s.bounds(float64(s.rect.Dx()), float64(s.rect.Dy()))
}

// DrawTo draws the sprite onto target.
func (s *Sprite) DrawTo(target render.Image) {
	if s.texture == nil || s.rect.Empty() {
		return
	}
	opts := &render.DrawImageOptions{}
	if s.mirror {
		opts.GeoM.Scale(-1, 1)
		opts.GeoM.Translate(float64(s.rect.Dx()), 0)
	}
	opts.GeoM.Concat(s.geoM())
	target.DrawImage(s.texture.SubImage(s.rect), opts)
}
