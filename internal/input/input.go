// Package input turns keyboard state into bus messages.
package input

import (
	"chosenoffset.com/forestadventure/internal/message"
	"chosenoffset.com/forestadventure/internal/render"
)

// Sender queues messages for the next dispatch.
type Sender interface {
	SendMessage(msg message.Message)
}

// System polls the keyboard once per frame.
type System struct {
	input  render.InputManager
	bus    Sender
	keys   []render.Key
	closed bool
}

// NewSystem creates a system watching every key the game knows.
func NewSystem(input render.InputManager, bus Sender) *System {
	return &System{
		input: input,
		bus:   bus,
		keys:  render.AllKeys(),
	}
}

// Update sends KeyPressed for keys pressed this frame, IsKeyPressed for keys held down
// and KeyReleased for keys released this frame. A window close request sends
// CloseWindow once.
func (s *System) Update() {
	for _, k := range s.keys {
		if s.input.IsKeyJustPressed(k) {
			s.bus.SendMessage(message.KeyPressed{Key: k})
		}
		if s.input.IsKeyPressed(k) {
			s.bus.SendMessage(message.IsKeyPressed{Key: k})
		}
		if s.input.IsKeyJustReleased(k) {
			s.bus.SendMessage(message.KeyReleased{Key: k})
		}
	}
	if s.input.IsWindowCloseRequested() && !s.closed {
		s.closed = true
		s.bus.SendMessage(message.CloseWindow{})
	}
}
