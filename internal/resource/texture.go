package resource

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"runtime"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/forestadventure/internal/render"
)

// TextureManager owns every texture loaded for a level. Textures outlive the
// entities drawing them and are released with Dispose.
type TextureManager struct {
	loader   render.ResourceLoader
	textures map[string]render.Image
}

// NewTextureManager creates a texture manager uploading through loader.
func NewTextureManager(loader render.ResourceLoader) *TextureManager {
	return &TextureManager{
		loader:   loader,
		textures: make(map[string]render.Image),
	}
}

// LoadAll decodes the image files in parallel and uploads them as textures under their
// names. files maps texture names to paths. Nothing is stored when any file fails.
func (m *TextureManager) LoadAll(ctx context.Context, files map[string]string) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var mu sync.Mutex
	decoded := make(map[string]image.Image, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, name := range names {
		path := files[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := decodeFile(path)
			if err != nil {
				return fmt.Errorf("failed to load texture %s: %w", name, err)
			}
			mu.Lock()
			decoded[name] = img
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Uploads stay on the calling goroutine.
	for _, name := range names {
		m.Add(name, m.loader.NewImageFromImage(decoded[name]))
	}
	zap.L().Debug("Textures loaded", zap.Int("count", len(names)))
	return nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Add stores a texture, replacing and disposing any previous one with the same name.
func (m *TextureManager) Add(name string, img render.Image) {
	if old, ok := m.textures[name]; ok && old != img {
		old.Dispose()
	}
	m.textures[name] = img
}

// Get returns a texture by name.
func (m *TextureManager) Get(name string) (render.Image, bool) {
	img, ok := m.textures[name]
	return img, ok
}

// Len returns the number of textures held.
func (m *TextureManager) Len() int {
	return len(m.textures)
}

// Dispose releases every texture.
func (m *TextureManager) Dispose() {
	for name, img := range m.textures {
		img.Dispose()
		delete(m.textures, name)
	}
}
