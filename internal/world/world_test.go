package world

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/entity"
	"chosenoffset.com/forestadventure/internal/render/rendertest"
	"chosenoffset.com/forestadventure/internal/resource"
)

const testMap = `{
  "width": 2,
  "height": 2,
  "tile_width": 16,
  "tile_height": 16,
  "tilesets": [
    {"name": "water", "first_gid": 9, "image": "water.png", "columns": 2, "rows": 1,
     "animations": [{"tile": 0, "frames": [0, 1], "duration": 0.5}]},
    {"name": "ground", "first_gid": 1, "image": "ground.png", "columns": 4, "rows": 2}
  ],
  "layers": [
    {"name": "Ground Layer 1", "data": [1, 2, 0, 9]},
    {"name": "Fringe Layer", "data": [0, 0, 3, 0]}
  ],
  "object_groups": [
    {"name": "Object Layer 1", "objects": [
      {"id": 1, "type": "Player", "x": 0, "y": 0, "width": 16, "height": 16,
       "properties": {"FaceDirection": "Left"}},
      {"id": 2, "type": "Dragon", "x": 16, "y": 0, "width": 16, "height": 16},
      {"id": 3, "type": "Entrance", "x": 16, "y": 16, "width": 16, "height": 8,
       "properties": {"Map": "cave.json"}}
    ]}
  ]
}`

func parseTestMap(t *testing.T) *MapData {
	t.Helper()
	data, err := ParseMap([]byte(testMap))
	require.NoError(t, err)
	return data
}

func testSheets(t *testing.T) *resource.SheetManager {
	t.Helper()
	sheets := resource.NewSheetManager()
	require.NoError(t, sheets.AddSheet("ground", rendertest.NewImage(64, 32), 4, 2))
	require.NoError(t, sheets.AddSheet("water", rendertest.NewImage(32, 16), 2, 1))
	return sheets
}

func TestLookupTile(t *testing.T) {
	data := parseTestMap(t)

	tile, err := data.LookupTile(6)
	require.NoError(t, err)
	assert.Equal(t, resource.ImageData{SheetID: "ground", Position: resource.Position{Col: 1, Row: 1}}, tile.Image)
	assert.Empty(t, tile.Animation)

	tile, err = data.LookupTile(9)
	require.NoError(t, err)
	assert.Equal(t, "water", tile.Image.SheetID)
	require.Len(t, tile.Animation, 2)
	assert.Equal(t, resource.Position{Col: 1}, tile.Animation[1].Position)
	assert.InDelta(t, 0.5, tile.Duration, 1e-9)
}

func TestLookupTileNotFound(t *testing.T) {
	data := parseTestMap(t)

	for _, gid := range []int{0, -1, 11} {
		_, err := data.LookupTile(gid)
		assert.ErrorIs(t, err, ErrTileNotFound, "gid %d", gid)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(m *MapData)
	}{
		{"no width", func(m *MapData) { m.Width = 0 }},
		{"no tile size", func(m *MapData) { m.TileHeight = 0 }},
		{"short layer", func(m *MapData) { m.Layers[0].Data = m.Layers[0].Data[:3] }},
		{"duplicate tileset", func(m *MapData) { m.Tilesets[1].Name = m.Tilesets[0].Name }},
		{"bad grid", func(m *MapData) { m.Tilesets[0].Columns = 0 }},
		{"bad first gid", func(m *MapData) { m.Tilesets[0].FirstGID = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := parseTestMap(t)
			tt.modify(data)
			assert.Error(t, data.Validate())
		})
	}
}

func TestParseMapRejectsGarbage(t *testing.T) {
	_, err := ParseMap([]byte("{"))
	assert.Error(t, err)
}

func TestMapRect(t *testing.T) {
	data := parseTestMap(t)
	assert.Equal(t, geom.Rect{W: 32, H: 32}, data.Rect())
}

func TestNewLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	level := NewLevel("test.json", parseTestMap(t), &rendertest.Renderer{}, testSheets(t), 0.1)

	bg := level.background.(*rendertest.Image)
	assert.Equal(t, 32, bg.Bounds().Dx())
	require.Len(t, bg.Draws, 2, "static ground tiles are pre-rendered")
	assert.InDelta(t, 16, bg.Draws[1].GeoM.Element(0, 2), 1e-9)

	objects := level.Objects()
	require.Len(t, objects, 2)
	assert.Equal(t, entity.TypePlayer, objects[0].Type)
	assert.Equal(t, geom.Vec{X: 8, Y: 8}, objects[0].Position)
	assert.Equal(t, entity.FaceLeft, objects[0].FaceDir)
	assert.Equal(t, entity.TypeEntrance, objects[1].Type)
	assert.Equal(t, geom.Vec{X: 24, Y: 20}, objects[1].Position)
	assert.Equal(t, geom.Vec{X: 16, Y: 8}, objects[1].Size)
	assert.Equal(t, "cave.json", objects[1].Properties.GetString("Map", ""))

	assert.Equal(t, 1, logs.FilterMessage("Unknown object type").Len())
	assert.Equal(t, geom.Rect{W: 32, H: 32}, level.Rect())
}

func TestLevelDrawOrderAndAnimatedTiles(t *testing.T) {
	level := NewLevel("test.json", parseTestMap(t), &rendertest.Renderer{}, testSheets(t), 0.1)
	target := rendertest.NewImage(32, 32)

	level.DrawBackground(target)
	require.Len(t, target.Draws, 2)
	assert.Same(t, level.background, target.Draws[0].Src)
	assert.Equal(t, 0, target.Draws[1].Src.Bounds().Min.X)

	level.Update(0.5)
	target.Clear()
	level.DrawBackground(target)
	assert.Equal(t, 16, target.Draws[1].Src.Bounds().Min.X)

	target.Clear()
	level.DrawFringe(target)
	require.Len(t, target.Draws, 1)
	assert.InDelta(t, 16, target.Draws[0].GeoM.Element(1, 2), 1e-9)

	level.Dispose()
	assert.True(t, level.background.(*rendertest.Image).Disposed)
}

func TestNewLevelSkipsUnknownTiles(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	defer zap.ReplaceGlobals(zap.New(core))()
	data := parseTestMap(t)
	data.Layers[1].Data = []int{0, 50, 0, 0}

	level := NewLevel("test.json", data, &rendertest.Renderer{}, testSheets(t), 0.1)

	assert.Empty(t, level.fringe)
	assert.Equal(t, 1, logs.FilterMessage("Skipping tile").Len())
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadTilesets(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "ground.png"), 64, 32)
	writePNG(t, filepath.Join(dir, "water.png"), 32, 16)
	loader := &rendertest.Loader{}
	textures := resource.NewTextureManager(loader)
	sheets := resource.NewSheetManager()
	data := parseTestMap(t)

	require.NoError(t, LoadTilesets(context.Background(), data, dir, textures, sheets))
	sheet, ok := sheets.Sheet("ground")
	require.True(t, ok)
	assert.Equal(t, 16, sheet.FrameW)
	assert.Equal(t, 2, loader.Uploaded)

	require.NoError(t, LoadTilesets(context.Background(), data, dir, textures, sheets))
	assert.Equal(t, 2, loader.Uploaded, "known tilesets are not loaded again")
}

func TestLoadTilesetsMissingImage(t *testing.T) {
	textures := resource.NewTextureManager(&rendertest.Loader{})
	sheets := resource.NewSheetManager()

	err := LoadTilesets(context.Background(), parseTestMap(t), t.TempDir(), textures, sheets)

	assert.Error(t, err)
	_, ok := sheets.Sheet("ground")
	assert.False(t, ok)
}

func TestScanLevels(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forest.json"), []byte(testMap), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	levels, err := ScanLevels(dir)
	require.NoError(t, err)

	require.Len(t, levels, 1)
	assert.Equal(t, "forest.json", levels[0].Name)
	assert.Equal(t, "2x2", levels[0].Size)
}

func TestScanLevelsMissingDir(t *testing.T) {
	_, err := ScanLevels(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
