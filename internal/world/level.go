package world

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/animation"
	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/entity"
	"chosenoffset.com/forestadventure/internal/render"
	"chosenoffset.com/forestadventure/internal/resource"
)

// Well-known layer and group names.
const (
	GroundLayer1 = "Ground Layer 1"
	GroundLayer2 = "Ground Layer 2"
	FringeLayer  = "Fringe Layer"
	ObjectLayer  = "Object Layer 1"
)

// FrameSource cuts frames out of the loaded sheets.
type FrameSource interface {
	MakeFrame(data resource.ImageData) animation.ImageFrame
}

// LoadTilesets loads the tileset images of data, relative to dir, and registers them as
// sheets named after their tileset. Tilesets already known to sheets are skipped.
func LoadTilesets(ctx context.Context, data *MapData, dir string, textures *resource.TextureManager, sheets *resource.SheetManager) error {
	files := make(map[string]string)
	for _, ts := range data.Tilesets {
		if _, ok := sheets.Sheet(ts.Name); ok {
			continue
		}
		files[ts.Name] = filepath.Join(dir, ts.Image)
	}
	if len(files) == 0 {
		return nil
	}
	if err := textures.LoadAll(ctx, files); err != nil {
		return fmt.Errorf("failed to load tilesets: %w", err)
	}
	for _, ts := range data.Tilesets {
		if _, loaded := files[ts.Name]; !loaded {
			continue
		}
		tex, _ := textures.Get(ts.Name)
		if err := sheets.AddSheet(ts.Name, tex, ts.Columns, ts.Rows); err != nil {
			return fmt.Errorf("tileset %s: %w", ts.Name, err)
		}
	}
	return nil
}

type tileSprite struct {
	sprite *animation.Sprite
	anim   *animation.Animation
}

func (t *tileSprite) update(dt float64) {
	if t.anim != nil {
		t.anim.Update(dt)
	}
}

func (t *tileSprite) drawTo(target render.Image) {
	if t.anim != nil {
		t.anim.DrawTo(target)
		return
	}
	t.sprite.DrawTo(target)
}

// Level is a map ready to play: a pre-rendered ground, the animated tiles, the fringe
// drawn above entities and the entities to spawn.
type Level struct {
	name       string
	data       *MapData
	background render.Image
	animated   []*tileSprite
	fringe     []*tileSprite
	objects    []entity.PropertyData
}

// NewLevel builds a level. Tiles whose id cannot be resolved are logged and skipped.
func NewLevel(name string, data *MapData, r render.Renderer, frames FrameSource, switchTime float64) *Level {
	size := data.Size()
	l := &Level{
		name:       name,
		data:       data,
		background: r.NewImage(int(size.X), int(size.Y)),
	}
	b := &levelBuilder{data: data, frames: frames, switchTime: switchTime}

	for _, layerName := range []string{GroundLayer1, GroundLayer2} {
		layer, ok := data.Layer(layerName)
		if !ok {
			continue
		}
		for _, t := range b.layer(layer) {
			if t.anim != nil {
				l.animated = append(l.animated, t)
				continue
			}
			t.drawTo(l.background)
		}
	}
	if layer, ok := data.Layer(FringeLayer); ok {
		l.fringe = b.layer(layer)
	}
	l.objects = readObjects(data)

	zap.L().Info("Level created",
		zap.String("level", name),
		zap.Int("animated", len(l.animated)),
		zap.Int("fringe", len(l.fringe)),
		zap.Int("objects", len(l.objects)))
	return l
}

type levelBuilder struct {
	data       *MapData
	frames     FrameSource
	switchTime float64
}

func (b *levelBuilder) layer(layer Layer) []*tileSprite {
	var out []*tileSprite
	for i, gid := range layer.Data {
		if gid == 0 {
			continue
		}
		tile, err := b.data.LookupTile(gid)
		if err != nil {
			zap.L().Error("Skipping tile", zap.String("layer", layer.Name), zap.Int("index", i), zap.Error(err))
			continue
		}
		pos := geom.Vec{
			X: float64((i % b.data.Width) * b.data.TileWidth),
			Y: float64((i / b.data.Width) * b.data.TileHeight),
		}
		out = append(out, b.tile(tile, pos))
	}
	return out
}

func (b *levelBuilder) tile(tile Tile, pos geom.Vec) *tileSprite {
	frame := b.frames.MakeFrame(tile.Image)
	// Tall tiles grow upwards from their cell.
	if h := frame.Rect.Dy(); h > b.data.TileHeight {
		pos.Y += float64(b.data.TileHeight - h)
	}

	if len(tile.Animation) == 0 {
		s := animation.NewSprite()
		s.SetFrame(frame)
		s.SetPosition(pos)
		return &tileSprite{sprite: s}
	}

	duration := tile.Duration
	if duration <= 0 {
		duration = b.switchTime
	}
	seq := animation.NewSequence[animation.ImageFrame](duration)
	for _, d := range tile.Animation {
		seq.AddFrame(b.frames.MakeFrame(d))
	}
	a := animation.NewAnimation(seq)
	a.SetPosition(pos)
	a.Start()
	return &tileSprite{anim: a}
}

func readObjects(data *MapData) []entity.PropertyData {
	group, ok := data.ObjectGroup(ObjectLayer)
	if !ok {
		return nil
	}
	out := make([]entity.PropertyData, 0, len(group.Objects))
	for _, obj := range group.Objects {
		typ := entity.ParseType(obj.Type)
		if typ == entity.TypeUnknown {
			zap.L().Warn("Unknown object type", zap.Int("id", obj.ID), zap.String("type", obj.Type))
			continue
		}
		props := entity.Properties(obj.Properties)
		out = append(out, entity.PropertyData{
			Type:       typ,
			Position:   geom.Vec{X: obj.X + obj.Width/2, Y: obj.Y + obj.Height/2},
			Size:       geom.Vec{X: obj.Width, Y: obj.Height},
			FaceDir:    entity.ParseFaceDirection(props.GetString("FaceDirection", "")),
			Properties: props,
		})
	}
	return out
}

// Name returns the level name, usually the map file name.
func (l *Level) Name() string { return l.name }

// Rect returns the level area in world coords.
func (l *Level) Rect() geom.Rect { return l.data.Rect() }

// Objects returns the entities placed on the map.
func (l *Level) Objects() []entity.PropertyData { return l.objects }

// Update advances the animated tiles.
func (l *Level) Update(dt float64) {
	for _, t := range l.animated {
		t.update(dt)
	}
	for _, t := range l.fringe {
		t.update(dt)
	}
}

// DrawBackground draws the ground layers. Entities are drawn after it.
func (l *Level) DrawBackground(target render.Image) {
	target.DrawImage(l.background, &render.DrawImageOptions{})
	for _, t := range l.animated {
		t.drawTo(target)
	}
}

// DrawFringe draws the layer covering entities.
func (l *Level) DrawFringe(target render.Image) {
	for _, t := range l.fringe {
		t.drawTo(target)
	}
}

// Dispose releases the pre-rendered ground.
func (l *Level) Dispose() {
	l.background.Dispose()
}
