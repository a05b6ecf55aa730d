// Package world loads tile maps and turns them into playable levels.
package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/resource"
)

// ErrTileNotFound is returned when a global tile id matches no tileset.
var ErrTileNotFound = errors.New("tile not found")

// TileAnimation cycles a tile through other tiles of the same tileset.
type TileAnimation struct {
	Tile     int     `json:"tile"`     // Local id of the animated tile
	Frames   []int   `json:"frames"`   // Local ids shown in turn
	Duration float64 `json:"duration"` // Seconds per frame, 0 uses the default
}

// Tileset is one image cut into a grid of tiles.
type Tileset struct {
	Name       string          `json:"name"`
	FirstGID   int             `json:"first_gid"`
	Image      string          `json:"image"` // Relative to the map file
	Columns    int             `json:"columns"`
	Rows       int             `json:"rows"`
	Animations []TileAnimation `json:"animations"`
}

// Layer is a grid of global tile ids, row by row. Zero means no tile.
type Layer struct {
	Name string `json:"name"`
	Data []int  `json:"data"`
}

// Object is a typed rectangle placed on the map.
type Object struct {
	ID         int               `json:"id"`
	Type       string            `json:"type"`
	X          float64           `json:"x"`
	Y          float64           `json:"y"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Properties map[string]string `json:"properties"`
}

// ObjectGroup is a named list of objects.
type ObjectGroup struct {
	Name    string   `json:"name"`
	Objects []Object `json:"objects"`
}

// MapData is the parsed map file.
type MapData struct {
	Width        int           `json:"width"`  // In tiles
	Height       int           `json:"height"` // In tiles
	TileWidth    int           `json:"tile_width"`
	TileHeight   int           `json:"tile_height"`
	Tilesets     []Tileset     `json:"tilesets"`
	Layers       []Layer       `json:"layers"`
	ObjectGroups []ObjectGroup `json:"object_groups"`
}

// Tile is a resolved global tile id.
type Tile struct {
	Image     resource.ImageData
	Animation []resource.ImageData
	Duration  float64
}

// LoadMap reads and validates a map file.
func LoadMap(path string) (*MapData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}
	data, err := ParseMap(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid map file %s: %w", path, err)
	}
	return data, nil
}

// ParseMap parses and validates map JSON.
func ParseMap(raw []byte) (*MapData, error) {
	var data MapData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}
	sort.Slice(data.Tilesets, func(i, j int) bool { return data.Tilesets[i].FirstGID < data.Tilesets[j].FirstGID })
	return &data, nil
}

// Validate checks dimensions, tilesets and layer sizes.
func (m *MapData) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", m.Width, m.Height)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return fmt.Errorf("invalid tile size: %dx%d", m.TileWidth, m.TileHeight)
	}
	names := make(map[string]bool, len(m.Tilesets))
	for _, ts := range m.Tilesets {
		if ts.Name == "" || ts.Image == "" {
			return fmt.Errorf("tileset with first_gid %d needs a name and an image", ts.FirstGID)
		}
		if names[ts.Name] {
			return fmt.Errorf("duplicate tileset %s", ts.Name)
		}
		names[ts.Name] = true
		if ts.FirstGID <= 0 {
			return fmt.Errorf("tileset %s: invalid first_gid %d", ts.Name, ts.FirstGID)
		}
		if ts.Columns <= 0 || ts.Rows <= 0 {
			return fmt.Errorf("tileset %s: invalid grid %dx%d", ts.Name, ts.Columns, ts.Rows)
		}
	}
	for _, l := range m.Layers {
		if len(l.Data) != m.Width*m.Height {
			return fmt.Errorf("layer %s: expected %d tiles, got %d", l.Name, m.Width*m.Height, len(l.Data))
		}
	}
	return nil
}

// Size returns the map size in pixels.
func (m *MapData) Size() geom.Vec {
	return geom.Vec{X: float64(m.Width * m.TileWidth), Y: float64(m.Height * m.TileHeight)}
}

// Rect returns the map area in world coords.
func (m *MapData) Rect() geom.Rect {
	size := m.Size()
	return geom.Rect{W: size.X, H: size.Y}
}

// Layer returns a tile layer by name.
func (m *MapData) Layer(name string) (Layer, bool) {
	for _, l := range m.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// ObjectGroup returns an object group by name.
func (m *MapData) ObjectGroup(name string) (ObjectGroup, bool) {
	for _, g := range m.ObjectGroups {
		if g.Name == name {
			return g, true
		}
	}
	return ObjectGroup{}, false
}

// LookupTile resolves a global tile id through the tileset with the largest first_gid
// not above gid.
func (m *MapData) LookupTile(gid int) (Tile, error) {
	idx := -1
	for i, ts := range m.Tilesets {
		if ts.FirstGID <= gid && (idx < 0 || ts.FirstGID > m.Tilesets[idx].FirstGID) {
			idx = i
		}
	}
	if gid <= 0 || idx < 0 {
		return Tile{}, fmt.Errorf("%w: gid %d", ErrTileNotFound, gid)
	}
	ts := m.Tilesets[idx]
	local := gid - ts.FirstGID
	if local >= ts.Columns*ts.Rows {
		return Tile{}, fmt.Errorf("%w: gid %d outside tileset %s", ErrTileNotFound, gid, ts.Name)
	}

	tile := Tile{Image: ts.imageData(local)}
	for _, anim := range ts.Animations {
		if anim.Tile != local {
			continue
		}
		for _, f := range anim.Frames {
			tile.Animation = append(tile.Animation, ts.imageData(f))
		}
		tile.Duration = anim.Duration
		break
	}
	return tile, nil
}

func (ts Tileset) imageData(local int) resource.ImageData {
	return resource.ImageData{
		SheetID:  ts.Name,
		Position: resource.Position{Col: local % ts.Columns, Row: local / ts.Columns},
	}
}
