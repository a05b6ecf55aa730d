// Package resource owns textures and cuts sprite sheets into animation frames.
package resource

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/animation"
	"chosenoffset.com/forestadventure/internal/render"
)

// Position addresses a frame in a sheet by column and row.
type Position struct {
	Col int `yaml:"col" json:"col"`
	Row int `yaml:"row" json:"row"`
}

// ImageData describes a single frame.
type ImageData struct {
	SheetID  string
	Position Position
	Mirror   bool
}

// AnimationData describes a run of frames on one sheet row.
type AnimationData struct {
	SheetID      string
	Start        Position
	FrameCount   int
	DefaultFrame int
	Mirror       bool
}

// MirrorX returns a copy of d whose frames are flipped horizontally.
func MirrorX(d AnimationData) AnimationData {
	d.Mirror = !d.Mirror
	return d
}

// Sheet is a texture divided into a grid of equally sized frames.
type Sheet struct {
	Name    string
	Texture render.Image
	Cols    int
	Rows    int
	FrameW  int
	FrameH  int
}

// NewSheet divides texture into cols x rows frames.
func NewSheet(name string, texture render.Image, cols, rows int) (*Sheet, error) {
	if texture == nil {
		return nil, fmt.Errorf("sheet %s has no texture", name)
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid sheet dimensions for %s: %dx%d", name, cols, rows)
	}
	w, h := texture.Size()
	if w < cols || h < rows {
		return nil, fmt.Errorf("sheet %s is too small (%dx%d) for %dx%d frames", name, w, h, cols, rows)
	}
	return &Sheet{
		Name:    name,
		Texture: texture,
		Cols:    cols,
		Rows:    rows,
		FrameW:  w / cols,
		FrameH:  h / rows,
	}, nil
}

// FrameRect returns the source rectangle of the frame at pos.
func (s *Sheet) FrameRect(pos Position) (image.Rectangle, bool) {
	if pos.Col < 0 || pos.Col >= s.Cols || pos.Row < 0 || pos.Row >= s.Rows {
		return image.Rectangle{}, false
	}
	origin := s.Texture.Bounds().Min
	x := origin.X + pos.Col*s.FrameW
	y := origin.Y + pos.Row*s.FrameH
	return image.Rect(x, y, x+s.FrameW, y+s.FrameH), true
}

// SheetManager maps sheet names to sheets.
type SheetManager struct {
	sheets map[string]*Sheet
}

// NewSheetManager creates an empty sheet manager.
func NewSheetManager() *SheetManager {
	return &SheetManager{
		sheets: make(map[string]*Sheet),
	}
}

// AddSheet registers a texture as a sheet of cols x rows frames.
func (m *SheetManager) AddSheet(name string, texture render.Image, cols, rows int) error {
	if name == "" {
		return fmt.Errorf("sheet name cannot be empty")
	}
	if _, exists := m.sheets[name]; exists {
		return fmt.Errorf("sheet %s already registered", name)
	}
	sheet, err := NewSheet(name, texture, cols, rows)
	if err != nil {
		return err
	}
	m.sheets[name] = sheet
	return nil
}

// Sheet returns a sheet by name.
func (m *SheetManager) Sheet(name string) (*Sheet, bool) {
	s, ok := m.sheets[name]
	return s, ok
}

// MakeFrame cuts a single frame. Unknown sheets and positions give an invalid frame.
func (m *SheetManager) MakeFrame(data ImageData) animation.ImageFrame {
	sheet, ok := m.sheets[data.SheetID]
	if !ok {
		zap.L().Error("Unknown sheet", zap.String("sheet", data.SheetID))
		return animation.ImageFrame{}
	}
	rect, ok := sheet.FrameRect(data.Position)
	if !ok {
		zap.L().Error("Frame position outside sheet",
			zap.String("sheet", data.SheetID),
			zap.Int("col", data.Position.Col),
			zap.Int("row", data.Position.Row))
		return animation.ImageFrame{}
	}
	return animation.NewImageFrame(sheet.Texture, rect, data.Mirror)
}

// MakeFrames cuts FrameCount consecutive frames starting at data.Start.
func (m *SheetManager) MakeFrames(data AnimationData) []animation.ImageFrame {
	if data.FrameCount < 0 {
		zap.L().Error("Negative frame count",
			zap.String("sheet", data.SheetID),
			zap.Int("count", data.FrameCount))
		return nil
	}
	frames := make([]animation.ImageFrame, 0, data.FrameCount)
	for i := 0; i < data.FrameCount; i++ {
		pos := Position{Col: data.Start.Col + i, Row: data.Start.Row}
		frames = append(frames, m.MakeFrame(ImageData{SheetID: data.SheetID, Position: pos, Mirror: data.Mirror}))
	}
	return frames
}
