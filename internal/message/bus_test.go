package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/forestadventure/internal/render"
)

func TestSendMessageOnlyQueues(t *testing.T) {
	bus := NewBus()
	var got []Message
	bus.AddSubscriber("Player-1", []Type{TypeKeyPressed}, func(msg Message) { got = append(got, msg) })

	bus.SendMessage(KeyPressed{Key: render.KeySpace})
	assert.Empty(t, got)
	assert.Equal(t, 1, bus.Pending())

	bus.DispatchMessages()
	require.Len(t, got, 1)
	assert.Equal(t, KeyPressed{Key: render.KeySpace}, got[0])
	assert.Zero(t, bus.Pending())
}

func TestDispatchDeliversOnlyRegisteredTypesInOrder(t *testing.T) {
	bus := NewBus()
	var got []Message
	bus.AddSubscriber("a", []Type{TypeKeyPressed, TypeKeyReleased}, func(msg Message) { got = append(got, msg) })

	bus.SendMessage(KeyPressed{Key: render.KeyW})
	bus.SendMessage(PlaySound{Sound: "coin"})
	bus.SendMessage(KeyReleased{Key: render.KeyW})
	bus.DispatchMessages()

	assert.Equal(t, []Message{KeyPressed{Key: render.KeyW}, KeyReleased{Key: render.KeyW}}, got)
}

func TestSubscribersCalledInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var order []string
	for _, id := range []string{"first", "second", "third"} {
		id := id
		bus.AddSubscriber(id, []Type{TypeCloseWindow}, func(Message) { order = append(order, id) })
	}

	bus.SendMessage(CloseWindow{})
	bus.DispatchMessages()

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestResubscribeReplacesHandler(t *testing.T) {
	bus := NewBus()
	calls := map[string]int{}
	bus.AddSubscriber("a", []Type{TypePlayerDied}, func(Message) { calls["old"]++ })
	bus.AddSubscriber("a", []Type{TypePlayerDied}, func(Message) { calls["new"]++ })

	bus.SendMessage(PlayerDied{})
	bus.DispatchMessages()

	assert.Equal(t, map[string]int{"new": 1}, calls)
}

func TestRemoveSubscriber(t *testing.T) {
	bus := NewBus()
	calls := 0
	bus.AddSubscriber("a", []Type{TypeKeyPressed, TypeKeyReleased}, func(Message) { calls++ })
	bus.RemoveSubscriber("a", []Type{TypeKeyPressed})

	assert.False(t, bus.HasSubscriber("a", TypeKeyPressed))
	assert.True(t, bus.HasSubscriber("a", TypeKeyReleased))

	bus.SendMessage(KeyPressed{})
	bus.SendMessage(KeyReleased{})
	bus.DispatchMessages()
	assert.Equal(t, 1, calls)
}

func TestChangesDuringDispatchApplyNextDispatch(t *testing.T) {
	bus := NewBus()
	var late int
	var echoed int

	bus.AddSubscriber("a", []Type{TypeEnterLevel}, func(Message) {
		bus.AddSubscriber("late", []Type{TypeEnterLevel}, func(Message) { late++ })
		bus.SendMessage(PlaySound{Sound: "echo"})
	})
	bus.AddSubscriber("b", []Type{TypePlaySound}, func(Message) { echoed++ })

	bus.SendMessage(EnterLevel{Map: "next.json"})
	bus.DispatchMessages()

	assert.Zero(t, late)
	assert.Zero(t, echoed)
	assert.Equal(t, 1, bus.Pending())

	bus.DispatchMessages()
	assert.Equal(t, 1, echoed)
}

func TestRemoveDuringDispatchKeepsSnapshot(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.AddSubscriber("a", []Type{TypeCloseWindow}, func(Message) {
		got = append(got, "a")
		bus.RemoveSubscriber("b", []Type{TypeCloseWindow})
	})
	bus.AddSubscriber("b", []Type{TypeCloseWindow}, func(Message) { got = append(got, "b") })

	bus.SendMessage(CloseWindow{})
	bus.DispatchMessages()
	assert.Equal(t, []string{"a", "b"}, got)

	got = nil
	bus.SendMessage(CloseWindow{})
	bus.DispatchMessages()
	assert.Equal(t, []string{"a"}, got)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "PlaySound", PlaySound{}.Type().String())
	assert.Equal(t, "Unknown", Type(99).String())
}
