package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/forestadventure/internal/entity"
	"chosenoffset.com/forestadventure/internal/render"
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	textColor       = color.RGBA{255, 255, 255, 255}
)

// Draw renders the level into the scene texture and shows the part the camera sees.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)
	if g.level == nil {
		return
	}

	// Ground, then entities, then the fringe above them
	g.scene.Clear()
	g.level.DrawBackground(g.scene)
	g.entities.DrawTo(g.scene)
	g.level.DrawFringe(g.scene)

	pos := g.camera.Position()
	opts := &render.DrawImageOptions{}
	opts.GeoM.Translate(-pos.X, -pos.Y)
	screen.DrawImage(g.scene, opts)

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen render.Image) {
	coins := 0
	for _, p := range g.entities.FindByType(entity.TypePlayer) {
		coins += p.Score()
	}
	g.renderer.DrawText(screen, fmt.Sprintf("Coins: %d", coins), 4, 4, textColor)

	for i, m := range g.messages {
		g.renderer.DrawText(screen, m.Text, 4, g.cfg.Window.Height-16*(i+1), m.color())
	}
}
