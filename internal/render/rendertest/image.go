// Package rendertest provides an in-memory render.Image for tests.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/forestadventure/internal/render"
)

// DrawCall records one DrawImage invocation.
type DrawCall struct {
	Src  render.Image
	GeoM render.GeoM
}

// RectCall records one StrokeRect invocation.
type RectCall struct {
	X, Y, W, H float32
}

// Image is a render.Image that records what is drawn onto it.
type Image struct {
	Rect     image.Rectangle
	Draws    []DrawCall
	Rects    []RectCall
	Fills    int
	Disposed bool
}

// NewImage returns a fake image of the given size.
func NewImage(width, height int) *Image {
	return &Image{Rect: image.Rect(0, 0, width, height)}
}

func (i *Image) Bounds() image.Rectangle { return i.Rect }

func (i *Image) Size() (int, int) { return i.Rect.Dx(), i.Rect.Dy() }

func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{Rect: r.Intersect(i.Rect)}
}

func (i *Image) Fill(color.Color) { i.Fills++ }

func (i *Image) Clear() { i.Draws = nil }

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := DrawCall{Src: src}
	if opts != nil {
		call.GeoM = opts.GeoM
	}
	i.Draws = append(i.Draws, call)
}

func (i *Image) StrokeRect(x, y, w, h, _ float32, _ color.Color) {
	i.Rects = append(i.Rects, RectCall{X: x, Y: y, W: w, H: h})
}

func (i *Image) Dispose() { i.Disposed = true }

// TextCall records one DrawText invocation.
type TextCall struct {
	Text  string
	Color color.RGBA
}

// Renderer is a render.Renderer producing fake images.
type Renderer struct {
	Texts []string
	Calls []TextCall
}

func (r *Renderer) NewImage(width, height int) render.Image {
	return NewImage(width, height)
}

func (r *Renderer) DrawText(_ render.Image, text string, _, _ int, clr color.Color) {
	r.Texts = append(r.Texts, text)
	r.Calls = append(r.Calls, TextCall{Text: text, Color: color.RGBAModel.Convert(clr).(color.RGBA)})
}

// Input is a scripted render.InputManager.
type Input struct {
	Held         map[render.Key]bool
	JustPressed  map[render.Key]bool
	JustReleased map[render.Key]bool
	CloseRequest bool
}

// NewInput returns an Input with no keys down.
func NewInput() *Input {
	return &Input{
		Held:         make(map[render.Key]bool),
		JustPressed:  make(map[render.Key]bool),
		JustReleased: make(map[render.Key]bool),
	}
}

func (in *Input) IsKeyPressed(k render.Key) bool      { return in.Held[k] }
func (in *Input) IsKeyJustPressed(k render.Key) bool  { return in.JustPressed[k] }
func (in *Input) IsKeyJustReleased(k render.Key) bool { return in.JustReleased[k] }
func (in *Input) IsWindowCloseRequested() bool        { return in.CloseRequest }

// Loader is a render.ResourceLoader creating fake images.
type Loader struct {
	Uploaded int
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	return nil, fmt.Errorf("rendertest: cannot load %s", path)
}

func (l *Loader) NewImageFromImage(img image.Image) render.Image {
	l.Uploaded++
	b := img.Bounds()
	return NewImage(b.Dx(), b.Dy())
}
