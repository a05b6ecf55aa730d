package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// TileSize is the edge of a placeholder tile and of most sprite frames
const TileSize = 16

// ColorPalette defines colors for the forest placeholders
var ColorPalette = struct {
	// Ground
	Grass1  color.RGBA
	Grass2  color.RGBA
	Flowers color.RGBA
	Dirt    color.RGBA
	Water1  color.RGBA
	Water2  color.RGBA
	Bush    color.RGBA
	Rock    color.RGBA

	// Entities
	Player color.RGBA
	Mole   color.RGBA
	Arrow  color.RGBA
	Coin   color.RGBA

	// Outlines
	Border color.RGBA
	Hit    color.RGBA
	Dead   color.RGBA
	Clear  color.RGBA
}{
	Grass1:  color.RGBA{70, 140, 60, 255},
	Grass2:  color.RGBA{60, 125, 55, 255},
	Flowers: color.RGBA{230, 200, 60, 255},
	Dirt:    color.RGBA{140, 105, 70, 255},
	Water1:  color.RGBA{50, 90, 180, 255},
	Water2:  color.RGBA{70, 120, 210, 255},
	Bush:    color.RGBA{30, 90, 40, 255},
	Rock:    color.RGBA{120, 120, 115, 255},

	Player: color.RGBA{0, 220, 120, 255}, // Bright green
	Mole:   color.RGBA{120, 80, 50, 255},
	Arrow:  color.RGBA{200, 180, 140, 255},
	Coin:   color.RGBA{255, 215, 0, 255}, // Gold

	Border: color.RGBA{20, 20, 20, 255},
	Hit:    color.RGBA{255, 60, 60, 255},
	Dead:   color.RGBA{90, 90, 90, 255},
	Clear:  color.RGBA{0, 0, 0, 0},
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border
func CreateBorderedTile(fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolidTile(fillColor)
	for i := 0; i < borderWidth; i++ {
		for x := 0; x < TileSize; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, TileSize-1-i, borderColor)
		}
		for y := 0; y < TileSize; y++ {
			img.Set(i, y, borderColor)
			img.Set(TileSize-1-i, y, borderColor)
		}
	}
	return img
}

// CreatePatternedTile creates a tile with a simple pattern
func CreatePatternedTile(baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := CreateSolidTile(baseColor)

	switch pattern {
	case "dots":
		quarter := TileSize / 4
		threeQuarter := 3 * TileSize / 4
		for _, p := range []image.Point{{quarter, quarter}, {threeQuarter, quarter}, {quarter, threeQuarter}, {threeQuarter, threeQuarter}} {
			img.Set(p.X, p.Y, patternColor)
		}
	case "waves":
		for y := 2; y < TileSize; y += 5 {
			for x := 0; x < TileSize; x++ {
				if (x/3)%2 == 0 {
					img.Set(x, y, patternColor)
				}
			}
		}
	case "diagonal":
		for i := 0; i < TileSize; i++ {
			img.Set(i, i, patternColor)
			img.Set(i, TileSize-1-i, patternColor)
		}
	}

	return img
}

// CreateCircle creates a round sprite with a marker dot. The marker sits on the
// edge at angle quarter turns from the bottom, which shows facing and frame
// changes in animated sheets.
func CreateCircle(fillColor, outlineColor color.RGBA, quarter int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{ColorPalette.Clear}, image.Point{}, draw.Src)

	center := TileSize / 2
	radius := TileSize/2 - 1

	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= (radius-1)*(radius-1) {
				img.Set(x, y, fillColor)
			} else if distSq <= radius*radius {
				img.Set(x, y, outlineColor)
			}
		}
	}

	marker := [4]image.Point{
		{center, TileSize - 4},
		{3, center},
		{center, 3},
		{TileSize - 4, center},
	}[((quarter%4)+4)%4]
	draw.Draw(img, image.Rect(marker.X-1, marker.Y-1, marker.X+1, marker.Y+1), &image.Uniform{outlineColor}, image.Point{}, draw.Src)
	return img
}

// CreateAtlas creates a sheet from equally sized tiles, row by row
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	tileCount := len(tiles)
	rows := (tileCount + columns - 1) / columns

	atlas := image.NewRGBA(image.Rect(0, 0, columns*TileSize, rows*TileSize))
	draw.Draw(atlas, atlas.Bounds(), &image.Uniform{ColorPalette.Clear}, image.Point{}, draw.Src)

	for i, tile := range tiles {
		if tile == nil {
			continue
		}
		x := (i % columns) * TileSize
		y := (i / columns) * TileSize
		draw.Draw(atlas, image.Rect(x, y, x+TileSize, y+TileSize), tile, image.Point{}, draw.Src)
	}

	return atlas
}

// SavePNG saves an image to a PNG file, creating missing directories
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
