package entity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/message"
	"chosenoffset.com/forestadventure/internal/render/rendertest"
	"chosenoffset.com/forestadventure/internal/resource"
)

const tile = 16

type fakeCamera struct {
	target func() geom.Vec
}

func (c *fakeCamera) Track(target func() geom.Vec) { c.target = target }

type world struct {
	manager *Manager
	bus     *message.Bus
	camera  *fakeCamera
	sent    []message.Message
}

func testTuning() Tuning {
	return Tuning{
		SwitchTime:    0.1,
		Velocity:      120,
		ArrowVelocity: 300,
		MoleVelocity:  60,
		MoleIdleTime:  1,
		MoleMoveTime:  1,
	}
}

func newWorld(t *testing.T, tuning Tuning, factory *Factory) *world {
	t.Helper()
	sheets := resource.NewSheetManager()
	require.NoError(t, sheets.AddSheet(SheetPlayer, rendertest.NewImage(PlayerSheetCols*tile, PlayerSheetRows*tile), PlayerSheetCols, PlayerSheetRows))
	require.NoError(t, sheets.AddSheet(SheetMole, rendertest.NewImage(MoleSheetCols*tile, MoleSheetRows*tile), MoleSheetCols, MoleSheetRows))
	require.NoError(t, sheets.AddSheet(SheetArrow, rendertest.NewImage(24, 8), 1, 1))
	require.NoError(t, sheets.AddSheet(SheetCoin, rendertest.NewImage(CoinSheetCols*tile, tile), CoinSheetCols, 1))

	w := &world{
		bus:    message.NewBus(),
		camera: &fakeCamera{},
	}
	w.manager = NewManager(ManagerConfig{
		Bus:     w.bus,
		Frames:  sheets,
		Camera:  w.camera,
		MapRect: geom.Rect{W: 20 * tile, H: 20 * tile},
		Tuning:  tuning,
		Factory: factory,
	})
	w.bus.AddSubscriber("test", []message.Type{
		message.TypePlaySound,
		message.TypeEnterLevel,
		message.TypePlayerDied,
	}, func(msg message.Message) { w.sent = append(w.sent, msg) })
	return w
}

// spawn creates an entity right away and returns it.
func (w *world) spawn(t *testing.T, data PropertyData) *Entity {
	t.Helper()
	before := w.manager.Len()
	w.manager.CreateEntity(data)
	w.manager.Flush()
	require.Equal(t, before+1, w.manager.Len())
	all := w.manager.Entities()
	return all[len(all)-1]
}

// send delivers msg the way a frame does.
func (w *world) send(msg message.Message) {
	w.bus.SendMessage(msg)
	w.bus.DispatchMessages()
}

// step runs n frames of dt seconds.
func (w *world) step(n int, dt float64) {
	for i := 0; i < n; i++ {
		w.manager.Update(dt)
		w.bus.DispatchMessages()
	}
}

func (w *world) sounds() []string {
	var out []string
	for _, msg := range w.sent {
		if s, ok := msg.(message.PlaySound); ok {
			out = append(out, s.Sound)
		}
	}
	return out
}
