package resource

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

	"chosenoffset.com/forestadventure/internal/render/rendertest"
)

func TestAddSheetValidation(t *testing.T) {
	m := NewSheetManager()

	require.NoError(t, m.AddSheet("player", rendertest.NewImage(64, 48), 4, 3))
	assert.Error(t, m.AddSheet("player", rendertest.NewImage(64, 48), 4, 3), "duplicate")
	assert.Error(t, m.AddSheet("", rendertest.NewImage(64, 48), 4, 3))
	assert.Error(t, m.AddSheet("bad", rendertest.NewImage(64, 48), 0, 3))
	assert.Error(t, m.AddSheet("nil", nil, 1, 1))

	sheet, ok := m.Sheet("player")
	require.True(t, ok)
	assert.Equal(t, 16, sheet.FrameW)
	assert.Equal(t, 16, sheet.FrameH)
}

func TestMakeFrame(t *testing.T) {
	m := NewSheetManager()
	require.NoError(t, m.AddSheet("mole", rendertest.NewImage(64, 112), 4, 7))

	f := m.MakeFrame(ImageData{SheetID: "mole", Position: Position{Col: 2, Row: 1}, Mirror: true})

	assert.True(t, f.Valid())
	assert.Equal(t, image.Rect(32, 16, 48, 32), f.Rect)
	assert.Equal(t, 8.0, f.Center.X)
	assert.True(t, f.Mirror)
}

func TestMakeFrameUnknownSheet(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	defer zap.ReplaceGlobals(zap.New(core))()
	m := NewSheetManager()

	f := m.MakeFrame(ImageData{SheetID: "missing"})

	assert.False(t, f.Valid())
	assert.Equal(t, 1, logs.FilterMessage("Unknown sheet").Len())
}

func TestMakeFrames(t *testing.T) {
	m := NewSheetManager()
	require.NoError(t, m.AddSheet("coin", rendertest.NewImage(64, 16), 4, 1))

	frames := m.MakeFrames(AnimationData{SheetID: "coin", FrameCount: 4})
	require.Len(t, frames, 4)
	for i, f := range frames {
		assert.Equal(t, i*16, f.Rect.Min.X)
	}

	frames = m.MakeFrames(MirrorX(AnimationData{SheetID: "coin", Start: Position{Col: 3}, FrameCount: 2}))
	require.Len(t, frames, 2)
	assert.True(t, frames[0].Mirror)
	assert.False(t, frames[1].Valid(), "second frame is past the last column")
}

func TestMakeFramesNegativeCount(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	defer zap.ReplaceGlobals(zap.New(core))()
	m := NewSheetManager()
	require.NoError(t, m.AddSheet("coin", rendertest.NewImage(64, 16), 4, 1))

	frames := m.MakeFrames(AnimationData{SheetID: "coin", FrameCount: -1})

	assert.Empty(t, frames)
	assert.Equal(t, 1, logs.FilterMessage("Negative frame count").Len())
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

func TestTextureManagerLoadAll(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 8, 4)
	writePNG(t, filepath.Join(dir, "b.png"), 2, 2)
	loader := &rendertest.Loader{}
	m := NewTextureManager(loader)

	err := m.LoadAll(context.Background(), map[string]string{
		"a": filepath.Join(dir, "a.png"),
		"b": filepath.Join(dir, "b.png"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, loader.Uploaded)
	a, ok := m.Get("a")
	require.True(t, ok)
	w, h := a.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 4, h)

	m.Dispose()
	assert.Zero(t, m.Len())
	assert.True(t, a.(*rendertest.Image).Disposed)
}

func TestTextureManagerLoadAllFails(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 8, 4)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644))
	loader := &rendertest.Loader{}
	m := NewTextureManager(loader)

	err := m.LoadAll(context.Background(), map[string]string{
		"a":      filepath.Join(dir, "a.png"),
		"broken": filepath.Join(dir, "broken.png"),
		"gone":   filepath.Join(dir, "gone.png"),
	})

	assert.Error(t, err)
	assert.Zero(t, m.Len())
	assert.Zero(t, loader.Uploaded)
}
