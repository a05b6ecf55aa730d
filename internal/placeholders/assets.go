package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/entity"
	"chosenoffset.com/forestadventure/internal/world"
)

// Paths of the generated files, relative to the output directory.
const (
	PlayerSheetPath = "sprites/player.png"
	MoleSheetPath   = "sprites/mole.png"
	ArrowSheetPath  = "sprites/arrow.png"
	CoinSheetPath   = "sprites/coin.png"
	TilesetPath     = "maps/forest_tiles.png"
	ForestMapPath   = "maps/forest.json"
	CaveMapPath     = "maps/cave.json"
)

// Tileset layout. Global ids are the local ids plus one.
const (
	tilesetName = "forest"
	tileCols    = 4
	tileRows    = 2

	gidGrass1  = 1
	gidGrass2  = 2
	gidFlowers = 3
	gidDirt    = 4
	gidWater   = 5 // Animated with the next tile
	gidBush    = 7
	gidRock    = 8
)

// Generate writes every sprite sheet, the forest tileset and two connected demo maps
// below dir.
func Generate(dir string) error {
	images := map[string]image.Image{
		PlayerSheetPath: PlayerSheet(),
		MoleSheetPath:   MoleSheet(),
		ArrowSheetPath:  ArrowSprite(),
		CoinSheetPath:   CoinSheet(),
		TilesetPath:     ForestTileset(),
	}
	for path, img := range images {
		if err := SavePNG(img, filepath.Join(dir, path)); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		zap.L().Info("Generated image", zap.String("path", path))
	}

	maps := map[string]*world.MapData{
		ForestMapPath: ForestMap(),
		CaveMapPath:   CaveMap(),
	}
	for path, data := range maps {
		if err := saveMap(data, filepath.Join(dir, path)); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		zap.L().Info("Generated map", zap.String("path", path))
	}
	return nil
}

func saveMap(data *world.MapData, path string) error {
	if err := data.Validate(); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// facingQuarter maps a sheet row to the marker position of its facing. Animated
// states use three rows: down, up and right.
func facingQuarter(row int) int {
	switch row % 3 {
	case 1:
		return 2
	case 2:
		return 3
	default:
		return 0
	}
}

// PlayerSheet draws the player frames. The last row is the death animation.
func PlayerSheet() *image.RGBA {
	tiles := make([]*image.RGBA, 0, entity.PlayerSheetCols*entity.PlayerSheetRows)
	for row := 0; row < entity.PlayerSheetRows; row++ {
		for col := 0; col < entity.PlayerSheetCols; col++ {
			fill := Lighten(ColorPalette.Player, 0.1*float64(col))
			quarter := facingQuarter(row)
			if row == entity.PlayerSheetRows-1 {
				fill = Darken(ColorPalette.Dead, 1-0.15*float64(col))
				quarter = col
			}
			tiles = append(tiles, CreateCircle(fill, ColorPalette.Border, quarter))
		}
	}
	return CreateAtlas(tiles, entity.PlayerSheetCols)
}

// MoleSheet draws the mole frames. The last row is the hit animation.
func MoleSheet() *image.RGBA {
	tiles := make([]*image.RGBA, 0, entity.MoleSheetCols*entity.MoleSheetRows)
	for row := 0; row < entity.MoleSheetRows; row++ {
		for col := 0; col < entity.MoleSheetCols; col++ {
			fill := Lighten(ColorPalette.Mole, 0.1*float64(col))
			quarter := facingQuarter(row)
			if row == entity.MoleSheetRows-1 {
				fill = Lighten(ColorPalette.Hit, 0.2*float64(col))
				quarter = col
			}
			tiles = append(tiles, CreateCircle(fill, ColorPalette.Border, quarter))
		}
	}
	return CreateAtlas(tiles, entity.MoleSheetCols)
}

// ArrowSprite draws a single arrow pointing right.
func ArrowSprite() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 24, 8))
	draw.Draw(img, img.Bounds(), &image.Uniform{ColorPalette.Clear}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 3, 20, 5), &image.Uniform{ColorPalette.Arrow}, image.Point{}, draw.Src)
	for i := 0; i < 4; i++ {
		for y := i; y < 8-i; y++ {
			img.Set(20+i, y, ColorPalette.Border)
		}
		img.Set(i, 2, ColorPalette.Hit)
		img.Set(i, 5, ColorPalette.Hit)
	}
	return img
}

// CoinSheet draws a spinning coin, one frame per column.
func CoinSheet() *image.RGBA {
	halfWidths := [entity.CoinSheetCols]int{6, 4, 1, 4}
	tiles := make([]*image.RGBA, 0, entity.CoinSheetCols)
	for _, hw := range halfWidths {
		tile := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
		draw.Draw(tile, tile.Bounds(), &image.Uniform{ColorPalette.Clear}, image.Point{}, draw.Src)
		c := TileSize / 2
		for y := 2; y < TileSize-2; y++ {
			for x := c - hw; x <= c+hw; x++ {
				dx := float64(x-c) / float64(hw)
				dy := float64(y-c) / 6
				if dx*dx+dy*dy <= 1 {
					tile.Set(x, y, ColorPalette.Coin)
				}
			}
		}
		tiles = append(tiles, tile)
	}
	return CreateAtlas(tiles, entity.CoinSheetCols)
}

// ForestTileset draws the ground tiles in the order of the gid constants.
func ForestTileset() *image.RGBA {
	bush := CreatePatternedTile(ColorPalette.Bush, Darken(ColorPalette.Bush, 0.6), "diagonal")
	tiles := []*image.RGBA{
		CreateSolidTile(ColorPalette.Grass1),
		CreatePatternedTile(ColorPalette.Grass2, Darken(ColorPalette.Grass2, 0.8), "dots"),
		CreatePatternedTile(ColorPalette.Grass1, ColorPalette.Flowers, "dots"),
		CreatePatternedTile(ColorPalette.Dirt, Darken(ColorPalette.Dirt, 0.85), "dots"),
		CreatePatternedTile(ColorPalette.Water1, ColorPalette.Water2, "waves"),
		CreatePatternedTile(ColorPalette.Water2, ColorPalette.Water1, "waves"),
		bush,
		CreateBorderedTile(ColorPalette.Rock, Darken(ColorPalette.Rock, 0.6), 1),
	}
	return CreateAtlas(tiles, tileCols)
}

type mapBuilder struct {
	data    *world.MapData
	objects []world.Object
}

func newMapBuilder(width, height int) *mapBuilder {
	data := &world.MapData{
		Width:      width,
		Height:     height,
		TileWidth:  TileSize,
		TileHeight: TileSize,
		Tilesets: []world.Tileset{{
			Name:     tilesetName,
			FirstGID: 1,
			Image:    filepath.Base(TilesetPath),
			Columns:  tileCols,
			Rows:     tileRows,
			Animations: []world.TileAnimation{
				{Tile: gidWater - 1, Frames: []int{gidWater - 1, gidWater}, Duration: 0.5},
			},
		}},
	}
	for _, name := range []string{world.GroundLayer1, world.GroundLayer2, world.FringeLayer} {
		data.Layers = append(data.Layers, world.Layer{Name: name, Data: make([]int, width*height)})
	}
	return &mapBuilder{data: data}
}

func (b *mapBuilder) set(layer string, x, y, gid int) {
	for i := range b.data.Layers {
		if b.data.Layers[i].Name == layer {
			b.data.Layers[i].Data[y*b.data.Width+x] = gid
			return
		}
	}
}

func (b *mapBuilder) fill(layer string, x0, y0, x1, y1, gid int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			b.set(layer, x, y, gid)
		}
	}
}

// object places an object covering w x h tiles with its top left corner on tile x, y.
func (b *mapBuilder) object(typ string, x, y, w, h int, props map[string]string) {
	b.objects = append(b.objects, world.Object{
		ID:         len(b.objects) + 1,
		Type:       typ,
		X:          float64(x * TileSize),
		Y:          float64(y * TileSize),
		Width:      float64(w * TileSize),
		Height:     float64(h * TileSize),
		Properties: props,
	})
}

// solid draws gid on the second ground layer and blocks it with a rect.
func (b *mapBuilder) solid(x0, y0, x1, y1, gid int) {
	b.fill(world.GroundLayer2, x0, y0, x1, y1, gid)
	b.object(entity.TypeRect.String(), x0, y0, x1-x0+1, y1-y0+1, nil)
}

func (b *mapBuilder) build() *world.MapData {
	b.data.ObjectGroups = []world.ObjectGroup{{Name: world.ObjectLayer, Objects: b.objects}}
	return b.data
}

// ForestMap is the first level: a meadow with a pond, moles, coins and an entrance
// to the cave on the east side.
func ForestMap() *world.MapData {
	const w, h = 24, 18
	b := newMapBuilder(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gid := gidGrass1
			if (x*7+y*3)%5 == 0 {
				gid = gidGrass2
			}
			b.set(world.GroundLayer1, x, y, gid)
		}
	}
	b.fill(world.GroundLayer1, 0, 9, w-1, 9, gidDirt)
	for _, p := range [][2]int{{3, 3}, {7, 12}, {13, 15}, {19, 6}, {21, 14}} {
		b.set(world.GroundLayer2, p[0], p[1], gidFlowers)
	}
	b.solid(15, 2, 18, 5, gidWater)
	b.solid(5, 13, 6, 13, gidRock)
	b.fill(world.FringeLayer, 0, 0, w-1, 0, gidBush)
	b.fill(world.FringeLayer, 0, h-1, w-1, h-1, gidBush)

	b.object(entity.TypePlayer.String(), 2, 9, 1, 1, nil)
	b.object(entity.TypeMole.String(), 10, 4, 1, 1, map[string]string{"FaceDirection": "Right"})
	b.object(entity.TypeMole.String(), 8, 14, 1, 1, map[string]string{"FaceDirection": "Up"})
	b.object(entity.TypeMole.String(), 20, 12, 1, 1, map[string]string{"FaceDirection": "Left"})
	for _, p := range [][2]int{{4, 4}, {12, 9}, {20, 15}, {3, 15}, {18, 8}} {
		b.object(entity.TypeCoin.String(), p[0], p[1], 1, 1, nil)
	}
	b.object(entity.TypeEntrance.String(), w-1, 9, 1, 1, map[string]string{"Map": filepath.Base(CaveMapPath)})
	return b.build()
}

// CaveMap is a small dirt level leading back to the forest.
func CaveMap() *world.MapData {
	const w, h = 16, 12
	b := newMapBuilder(w, h)
	b.fill(world.GroundLayer1, 0, 0, w-1, h-1, gidDirt)
	b.solid(0, 0, w-1, 0, gidRock)
	b.solid(0, h-1, w-1, h-1, gidRock)
	b.solid(7, 3, 8, 4, gidRock)

	b.object(entity.TypePlayer.String(), 2, 5, 1, 1, nil)
	b.object(entity.TypeMole.String(), 11, 7, 1, 1, map[string]string{"FaceDirection": "Down"})
	for _, p := range [][2]int{{5, 8}, {12, 3}, {13, 9}} {
		b.object(entity.TypeCoin.String(), p[0], p[1], 1, 1, nil)
	}
	b.object(entity.TypeEntrance.String(), 0, 5, 1, 1, map[string]string{"Map": filepath.Base(ForestMapPath)})
	return b.build()
}
