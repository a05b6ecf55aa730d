// Package game ties the systems of a running game together and drives them once per
// frame.
package game

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/camera"
	"chosenoffset.com/forestadventure/internal/config"
	"chosenoffset.com/forestadventure/internal/entity"
	"chosenoffset.com/forestadventure/internal/input"
	"chosenoffset.com/forestadventure/internal/message"
	"chosenoffset.com/forestadventure/internal/render"
	"chosenoffset.com/forestadventure/internal/resource"
	"chosenoffset.com/forestadventure/internal/sound"
	"chosenoffset.com/forestadventure/internal/world"
)

const (
	subscriberID = "Game"

	// maxFrameTime caps dt after a stall so entities don't tunnel through colliders.
	maxFrameTime = 0.25

	// respawnDelay lets the death animation play before the level is reloaded.
	respawnDelay = 1.0

	messageTime = 2.0
)

// Options lists what a Game needs from the outside.
type Options struct {
	Config   *config.Config
	Renderer render.Renderer
	Input    render.InputManager
	Loader   render.ResourceLoader
	Sound    *sound.Player    // Optional
	Clock    func() time.Time // Optional, defaults to time.Now
}

// Game holds all game state and logic.
type Game struct {
	cfg      *config.Config
	log      *zap.Logger
	session  string
	renderer render.Renderer
	clock    func() time.Time
	last     time.Time

	bus      *message.Bus
	input    *input.System
	camera   *camera.Camera
	textures *resource.TextureManager
	sheets   *resource.SheetManager
	factory  *entity.Factory
	sound    *sound.Player

	level     *world.Level
	levelPath string
	entities  *entity.Manager
	scene     render.Image

	pendingLevel string
	respawnIn    float64
	terminate    bool
	closed       bool
	messages     []Message
}

// New creates a game, loads the sprite sheets and the first level.
func New(ctx context.Context, opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	g := &Game{
		cfg:      cfg,
		session:  uuid.NewString(),
		renderer: opts.Renderer,
		clock:    clock,
		bus:      message.NewBus(),
		camera:   camera.New(float64(cfg.Window.Width), float64(cfg.Window.Height)),
		textures: resource.NewTextureManager(opts.Loader),
		sheets:   resource.NewSheetManager(),
		factory:  entity.NewFactory(),
		sound:    opts.Sound,
	}
	g.log = zap.L().With(zap.String("session", g.session))
	g.input = input.NewSystem(opts.Input, g.bus)

	if err := g.loadSheets(ctx); err != nil {
		g.textures.Dispose()
		return nil, err
	}

	g.bus.AddSubscriber(subscriberID, []message.Type{
		message.TypeKeyPressed,
		message.TypeCloseWindow,
		message.TypeEnterLevel,
		message.TypePlayerDied,
	}, g.onMessage)
	if g.sound != nil {
		g.sound.Subscribe(g.bus)
	}

	if err := g.LoadLevel(ctx, filepath.Join(cfg.Assets.Dir, cfg.Assets.Map)); err != nil {
		g.Close()
		return nil, err
	}

	g.log.Info("Game started",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("sheets", len(cfg.Assets.Sheets)))
	return g, nil
}

func (g *Game) loadSheets(ctx context.Context) error {
	files := make(map[string]string, len(g.cfg.Assets.Sheets))
	for _, s := range g.cfg.Assets.Sheets {
		files[s.Name] = filepath.Join(g.cfg.Assets.Dir, s.Path)
	}
	if err := g.textures.LoadAll(ctx, files); err != nil {
		return fmt.Errorf("failed to load sprite sheets: %w", err)
	}
	for _, s := range g.cfg.Assets.Sheets {
		tex, _ := g.textures.Get(s.Name)
		if err := g.sheets.AddSheet(s.Name, tex, s.Cols, s.Rows); err != nil {
			return err
		}
	}
	return nil
}

// Tuning converts the entity settings of cfg.
func Tuning(cfg *config.Config) entity.Tuning {
	return entity.Tuning{
		SwitchTime:    cfg.Animation.SwitchTime,
		Velocity:      cfg.Entity.Velocity,
		ArrowVelocity: cfg.Entity.ArrowVelocity,
		MoleVelocity:  cfg.Entity.MoleVelocity,
		MoleIdleTime:  cfg.Entity.MoleIdleTime,
		MoleMoveTime:  cfg.Entity.MoleMoveTime,
		DrawColliders: cfg.Debug.DrawColliders,
	}
}

func (g *Game) onMessage(msg message.Message) {
	switch m := msg.(type) {
	case message.KeyPressed:
		if m.Key == render.KeyEscape {
			g.terminate = true
		}
	case message.CloseWindow:
		g.terminate = true
	case message.EnterLevel:
		g.pendingLevel = filepath.Join(filepath.Dir(g.levelPath), m.Map)
		g.log.Info("Entering level", zap.String("map", m.Map))
	case message.PlayerDied:
		g.respawnIn = respawnDelay
		g.ShowMessage("You died")
	}
}

// tick returns the seconds since the previous frame.
func (g *Game) tick() float64 {
	now := g.clock()
	defer func() { g.last = now }()
	if g.last.IsZero() {
		return 1.0 / float64(g.cfg.Window.TPS)
	}
	return min(now.Sub(g.last).Seconds(), maxFrameTime)
}

// Update runs one frame. A level requested during the previous frame is loaded first,
// then input is published and delivered before the level and its entities advance.
func (g *Game) Update() error {
	dt := g.tick()

	if g.respawnIn > 0 {
		g.respawnIn -= dt
		if g.respawnIn <= 0 {
			g.pendingLevel = g.levelPath
		}
	}
	if path := g.pendingLevel; path != "" {
		g.pendingLevel = ""
		if err := g.LoadLevel(context.Background(), path); err != nil {
			return err
		}
	}

	g.input.Update()
	g.bus.DispatchMessages()
	if g.terminate {
		g.log.Info("Game terminated")
		return render.ErrTerminate
	}

	g.entities.Update(dt)
	g.level.Update(dt)
	g.camera.Update()
	g.updateMessages(dt)
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) updateMessages(dt float64) {
	kept := g.messages[:0]
	for _, m := range g.messages {
		m.TimeLeft -= dt
		if m.TimeLeft > 0 {
			kept = append(kept, m)
		}
	}
	g.messages = kept
}

// ShowMessage displays text on screen for a short time.
func (g *Game) ShowMessage(text string) {
	g.messages = append(g.messages, Message{Text: text, TimeLeft: messageTime, MaxTime: messageTime})
}

// Session identifies this run in the logs.
func (g *Game) Session() string { return g.session }

// Level returns the current level.
func (g *Game) Level() *world.Level { return g.level }

// Entities returns the entities of the current level.
func (g *Game) Entities() *entity.Manager { return g.entities }

// Camera returns the view camera.
func (g *Game) Camera() *camera.Camera { return g.camera }

// Bus returns the message bus of the game.
func (g *Game) Bus() *message.Bus { return g.bus }

// Close releases the entities before the level and the textures they draw from.
// Sound is closed last.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.unloadLevel()
	g.textures.Dispose()
	g.bus.RemoveSubscriber(subscriberID, []message.Type{
		message.TypeKeyPressed,
		message.TypeCloseWindow,
		message.TypeEnterLevel,
		message.TypePlayerDied,
	})
	if g.sound != nil {
		g.sound.Unsubscribe(g.bus)
		g.sound.Close()
	}
	g.log.Info("Game closed")
}
