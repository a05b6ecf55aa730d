package game

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/entity"
	"chosenoffset.com/forestadventure/internal/world"
)

// LoadLevel replaces the current level with the map at path and spawns its objects.
// The current level stays untouched when the new one fails to load.
func (g *Game) LoadLevel(ctx context.Context, path string) error {
	data, err := world.LoadMap(path)
	if err != nil {
		return err
	}
	if err := world.LoadTilesets(ctx, data, filepath.Dir(path), g.textures, g.sheets); err != nil {
		return err
	}

	g.unloadLevel()

	level := world.NewLevel(filepath.Base(path), data, g.renderer, g.sheets, g.cfg.Animation.SwitchTime)
	g.entities = entity.NewManager(entity.ManagerConfig{
		Bus:     g.bus,
		Frames:  g.sheets,
		Camera:  g.camera,
		MapRect: level.Rect(),
		Tuning:  Tuning(g.cfg),
		Factory: g.factory,
	})
	for _, obj := range level.Objects() {
		g.entities.CreateEntity(obj)
	}
	g.entities.Flush()

	size := level.Rect()
	g.scene = g.renderer.NewImage(int(size.W), int(size.H))
	g.camera.SetBounds(size)
	g.camera.Update()
	g.level = level
	g.levelPath = path
	g.respawnIn = 0
	g.ShowMessage(level.Name())

	g.log.Info("Level loaded",
		zap.String("path", path),
		zap.Int("entities", g.entities.Len()))
	return nil
}

// unloadLevel destroys the entities before the level they live in.
func (g *Game) unloadLevel() {
	if g.entities != nil {
		g.entities.Clear()
		g.entities = nil
	}
	if g.level != nil {
		g.level.Dispose()
		g.level = nil
	}
	if g.scene != nil {
		g.scene.Dispose()
		g.scene = nil
	}
}
