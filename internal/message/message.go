// Package message defines the messages exchanged between the game systems and the
// publish/subscribe bus that carries them.
package message

import "chosenoffset.com/forestadventure/internal/render"

// Type identifies the kind of a message.
type Type int

const (
	TypeUnknown Type = iota
	TypeKeyPressed
	TypeKeyReleased
	TypeIsKeyPressed
	TypeCloseWindow
	TypePlaySound
	TypeEnterLevel
	TypePlayerDied
)

var typeNames = map[Type]string{
	TypeKeyPressed:   "KeyPressed",
	TypeKeyReleased:  "KeyReleased",
	TypeIsKeyPressed: "IsKeyPressed",
	TypeCloseWindow:  "CloseWindow",
	TypePlaySound:    "PlaySound",
	TypeEnterLevel:   "EnterLevel",
	TypePlayerDied:   "PlayerDied",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Message is implemented by every message kind. Messages are values and are never
// modified after they are sent.
type Message interface {
	Type() Type
}

// KeyPressed is sent once when a key goes down.
type KeyPressed struct {
	Key render.Key
}

func (KeyPressed) Type() Type { return TypeKeyPressed }

// KeyReleased is sent once when a key goes up.
type KeyReleased struct {
	Key render.Key
}

func (KeyReleased) Type() Type { return TypeKeyReleased }

// IsKeyPressed is sent every frame while a key is held.
type IsKeyPressed struct {
	Key render.Key
}

func (IsKeyPressed) Type() Type { return TypeIsKeyPressed }

// CloseWindow is sent when the window asks to be closed.
type CloseWindow struct{}

func (CloseWindow) Type() Type { return TypeCloseWindow }

// PlaySound asks the sound player to play a named effect.
type PlaySound struct {
	Sound string
}

func (PlaySound) Type() Type { return TypePlaySound }

// EnterLevel asks the game to load another map.
type EnterLevel struct {
	Map string
}

func (EnterLevel) Type() Type { return TypeEnterLevel }

// PlayerDied is sent when the player enters its dead state.
type PlayerDied struct{}

func (PlayerDied) Type() Type { return TypePlayerDied }
