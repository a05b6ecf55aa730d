package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"chosenoffset.com/forestadventure/internal/config"
	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/entity"
	"chosenoffset.com/forestadventure/internal/message"
	"chosenoffset.com/forestadventure/internal/placeholders"
	"chosenoffset.com/forestadventure/internal/render"
	"chosenoffset.com/forestadventure/internal/render/rendertest"
)

type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

type fixture struct {
	game     *Game
	input    *rendertest.Input
	renderer *rendertest.Renderer
	loader   *rendertest.Loader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, placeholders.Generate(dir))

	cfg := config.DefaultConfig()
	cfg.Assets.Dir = dir
	f := &fixture{
		input:    rendertest.NewInput(),
		renderer: &rendertest.Renderer{},
		loader:   &rendertest.Loader{},
	}
	clock := &stepClock{now: time.Unix(0, 0), step: 250 * time.Millisecond}
	g, err := New(context.Background(), Options{
		Config:   cfg,
		Renderer: f.renderer,
		Input:    f.input,
		Loader:   f.loader,
		Clock:    clock.Now,
	})
	require.NoError(t, err)
	t.Cleanup(g.Close)
	f.game = g
	return f
}

func (f *fixture) player(t *testing.T) *entity.Entity {
	t.Helper()
	players := f.game.Entities().FindByType(entity.TypePlayer)
	require.Len(t, players, 1)
	return players[0]
}

func TestNewLoadsFirstLevel(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "forest.json", f.game.Level().Name())
	assert.Equal(t, geom.Vec{X: 40, Y: 152}, f.player(t).Transform().Position)
	assert.Len(t, f.game.Entities().FindByType(entity.TypeMole), 3)
	assert.Len(t, f.game.Entities().FindByType(entity.TypeCoin), 5)
	assert.Equal(t, geom.Vec{X: 0, Y: 32}, f.game.Camera().Position())
	// Four sheets and one tileset
	assert.Equal(t, 5, f.loader.Uploaded)
	assert.NotEmpty(t, f.game.Session())
}

func TestNewFailsWithoutAssets(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Assets.Dir = t.TempDir()

	_, err := New(context.Background(), Options{
		Config:   cfg,
		Renderer: &rendertest.Renderer{},
		Input:    rendertest.NewInput(),
		Loader:   &rendertest.Loader{},
	})

	assert.Error(t, err)
}

func TestEscapeTerminates(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.game.Update())

	f.input.JustPressed[render.KeyEscape] = true

	assert.ErrorIs(t, f.game.Update(), render.ErrTerminate)
}

func TestCloseWindowTerminates(t *testing.T) {
	f := newFixture(t)
	f.input.CloseRequest = true

	assert.ErrorIs(t, f.game.Update(), render.ErrTerminate)
}

func TestHeldKeyMovesPlayer(t *testing.T) {
	f := newFixture(t)
	f.input.Held[render.KeyRight] = true

	require.NoError(t, f.game.Update())
	require.NoError(t, f.game.Update())

	player := f.player(t)
	assert.Equal(t, entity.StateMove, player.StateMachine().Current())
	// 1/60 s on the first frame and 0.25 s on the second at 120 px/s
	assert.InDelta(t, 40+2+30, player.Transform().Position.X, 1e-9)
}

func TestEnterLevelLoadsOnNextFrame(t *testing.T) {
	f := newFixture(t)
	uploaded := f.loader.Uploaded

	f.game.Bus().SendMessage(message.EnterLevel{Map: "cave.json"})
	require.NoError(t, f.game.Update())
	assert.Equal(t, "forest.json", f.game.Level().Name())

	require.NoError(t, f.game.Update())
	assert.Equal(t, "cave.json", f.game.Level().Name())
	assert.Equal(t, geom.Vec{X: 40, Y: 88}, f.player(t).Transform().Position)
	assert.Equal(t, uploaded, f.loader.Uploaded)
}

func TestBrokenLevelKeepsCurrentOne(t *testing.T) {
	f := newFixture(t)
	f.game.Bus().SendMessage(message.EnterLevel{Map: "missing.json"})
	require.NoError(t, f.game.Update())

	assert.Error(t, f.game.Update())
	assert.Equal(t, "forest.json", f.game.Level().Name())
	assert.Equal(t, 1, len(f.game.Entities().FindByType(entity.TypePlayer)))
}

func TestPlayerDiedReloadsAfterDelay(t *testing.T) {
	f := newFixture(t)
	first := f.player(t).ID()

	f.game.Bus().SendMessage(message.PlayerDied{})
	require.NoError(t, f.game.Update())
	for i := 0; i < 3; i++ {
		require.NoError(t, f.game.Update())
	}
	assert.Equal(t, first, f.player(t).ID())

	require.NoError(t, f.game.Update())
	second := f.player(t).ID()
	assert.NotEqual(t, first, second)
	assert.Greater(t, second, first)
	assert.Equal(t, "forest.json", f.game.Level().Name())
}

func TestDrawShowsSceneAtCameraOffset(t *testing.T) {
	f := newFixture(t)
	screen := rendertest.NewImage(320, 240)

	f.game.Draw(screen)

	require.Len(t, screen.Draws, 1)
	assert.Same(t, f.game.scene, screen.Draws[0].Src)
	geo := screen.Draws[0].GeoM
	assert.InDelta(t, 0, geo.Element(0, 2), 1e-9)
	assert.InDelta(t, -32, geo.Element(1, 2), 1e-9)
	assert.Equal(t, 1, screen.Fills)
	assert.Contains(t, f.renderer.Texts, "Coins: 0")
	assert.Contains(t, f.renderer.Texts, "forest.json")
}

func TestMessagesFade(t *testing.T) {
	f := newFixture(t)
	f.game.ShowMessage("hello")
	require.Len(t, f.game.messages, 2)

	for i := 0; i < 9; i++ {
		require.NoError(t, f.game.Update())
	}

	assert.Empty(t, f.game.messages)
}

func TestMessagesDrawFading(t *testing.T) {
	f := newFixture(t)
	screen := rendertest.NewImage(320, 240)

	f.game.Draw(screen)
	require.Len(t, f.renderer.Calls, 2)
	assert.Equal(t, uint8(255), f.renderer.Calls[0].Color.A, "coins stay opaque")
	assert.Equal(t, uint8(255), f.renderer.Calls[1].Color.A)

	// 1/60 s, then 0.25 s of the 2 s message
	require.NoError(t, f.game.Update())
	require.NoError(t, f.game.Update())
	f.renderer.Calls = nil
	f.game.Draw(screen)

	require.Len(t, f.renderer.Calls, 2)
	assert.Equal(t, "forest.json", f.renderer.Calls[1].Text)
	alpha := f.renderer.Calls[1].Color.A
	assert.Less(t, alpha, uint8(255))
	assert.InDelta(t, 255*(2-0.25-1.0/60)/2, float64(alpha), 1)
}

func TestMessageColor(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want uint8
	}{
		{"fresh", Message{TimeLeft: 2, MaxTime: 2}, 255},
		{"half", Message{TimeLeft: 1, MaxTime: 2}, 127},
		{"expired", Message{TimeLeft: -1, MaxTime: 2}, 0},
		{"no duration", Message{}, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, a := tt.msg.color().RGBA()
			assert.Equal(t, tt.want, uint8(a>>8))
		})
	}
}

func TestLayout(t *testing.T) {
	f := newFixture(t)

	w, h := f.game.Layout(1920, 1080)

	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestTuning(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Entity.Velocity = 99
	cfg.Debug.DrawColliders = true

	tuning := Tuning(cfg)

	assert.InDelta(t, 99, tuning.Velocity, 1e-9)
	assert.InDelta(t, cfg.Animation.SwitchTime, tuning.SwitchTime, 1e-9)
	assert.InDelta(t, cfg.Entity.MoleIdleTime, tuning.MoleIdleTime, 1e-9)
	assert.True(t, tuning.DrawColliders)
}

func TestLogsCarrySession(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	f := newFixture(t)

	loaded := logs.FilterMessage("Level loaded").All()
	require.Len(t, loaded, 1)
	assert.Equal(t, f.game.Session(), loaded[0].ContextMap()["session"])
}

func TestCloseDisposesScene(t *testing.T) {
	f := newFixture(t)
	scene := f.game.scene.(*rendertest.Image)

	f.game.Close()

	assert.True(t, scene.Disposed)
	assert.Nil(t, f.game.Level())
	assert.False(t, f.game.Bus().HasSubscriber(subscriberID, message.TypeKeyPressed))
}
