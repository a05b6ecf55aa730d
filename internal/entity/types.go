package entity

import (
	"strings"

	"chosenoffset.com/forestadventure/internal/core/geom"
)

// ID identifies an entity for its whole lifetime. IDs are never reused.
type ID int

// InvalidID is never assigned to an entity.
const InvalidID ID = 0

// Type is the closed set of entity kinds.
type Type int

const (
	TypeUnknown Type = iota
	TypeRect
	TypePlayer
	TypeMole
	TypeArrow
	TypeCoin
	TypeEntrance
)

var typeNames = map[Type]string{
	TypeUnknown:  "Unknown",
	TypeRect:     "Rect",
	TypePlayer:   "Player",
	TypeMole:     "Mole",
	TypeArrow:    "Arrow",
	TypeCoin:     "Coin",
	TypeEntrance: "Entrance",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ParseType converts a map object type to an entity type, ignoring case.
func ParseType(s string) Type {
	for t, name := range typeNames {
		if strings.EqualFold(name, s) {
			return t
		}
	}
	return TypeUnknown
}

// FaceDirection is where an entity looks.
type FaceDirection int

const (
	FaceUndefined FaceDirection = iota
	FaceDown
	FaceUp
	FaceLeft
	FaceRight
)

var faceNames = map[FaceDirection]string{
	FaceUndefined: "Undefined",
	FaceDown:      "Down",
	FaceUp:        "Up",
	FaceLeft:      "Left",
	FaceRight:     "Right",
}

func (f FaceDirection) String() string {
	if name, ok := faceNames[f]; ok {
		return name
	}
	return "Undefined"
}

// ParseFaceDirection converts a property value to a face direction, ignoring case.
func ParseFaceDirection(s string) FaceDirection {
	for f, name := range faceNames {
		if strings.EqualFold(name, s) {
			return f
		}
	}
	return FaceUndefined
}

// Rotation returns the sprite rotation in degrees for something pointing this way.
func (f FaceDirection) Rotation() float64 {
	switch f {
	case FaceDown:
		return 90
	case FaceLeft:
		return 180
	case FaceUp:
		return 270
	default:
		return 0
	}
}

// Opposite returns the reverse direction.
func (f FaceDirection) Opposite() FaceDirection {
	switch f {
	case FaceDown:
		return FaceUp
	case FaceUp:
		return FaceDown
	case FaceLeft:
		return FaceRight
	case FaceRight:
		return FaceLeft
	default:
		return FaceUndefined
	}
}

// Clockwise returns the next direction turning clockwise.
func (f FaceDirection) Clockwise() FaceDirection {
	switch f {
	case FaceRight:
		return FaceDown
	case FaceDown:
		return FaceLeft
	case FaceLeft:
		return FaceUp
	default:
		return FaceRight
	}
}

// Move returns the movement direction matching a facing.
func (f FaceDirection) Move() MoveDirection {
	switch f {
	case FaceDown:
		return MoveDown
	case FaceUp:
		return MoveUp
	case FaceLeft:
		return MoveLeft
	case FaceRight:
		return MoveRight
	default:
		return MoveNone
	}
}

// MoveDirection is where an entity walks.
type MoveDirection int

const (
	MoveNone MoveDirection = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

// Vector returns the unit step for the direction.
func (m MoveDirection) Vector() geom.Vec {
	switch m {
	case MoveUp:
		return geom.Vec{Y: -1}
	case MoveDown:
		return geom.Vec{Y: 1}
	case MoveLeft:
		return geom.Vec{X: -1}
	case MoveRight:
		return geom.Vec{X: 1}
	default:
		return geom.Vec{}
	}
}

// Face returns the facing matching a movement direction.
func (m MoveDirection) Face() FaceDirection {
	switch m {
	case MoveUp:
		return FaceUp
	case MoveDown:
		return FaceDown
	case MoveLeft:
		return FaceLeft
	case MoveRight:
		return FaceRight
	default:
		return FaceUndefined
	}
}

// LayerType orders entities when drawing. Lower layers are drawn first.
type LayerType int

const (
	LayerGround LayerType = iota
	LayerAir
)

// EventType is the kind of an event routed into a state machine.
type EventType int

const (
	EventNone EventType = iota
	EventInit
	EventStartMove
	EventStopMove
	EventAttack
	EventAttackWeapon
	EventCollision
	EventDead
)

var eventNames = map[EventType]string{
	EventNone:         "None",
	EventInit:         "Init",
	EventStartMove:    "StartMove",
	EventStopMove:     "StopMove",
	EventAttack:       "Attack",
	EventAttackWeapon: "AttackWeapon",
	EventCollision:    "Collision",
	EventDead:         "Dead",
}

func (e EventType) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "Unknown"
}

// Event is delivered to the current state. Fields beyond Type are set only by the
// events that use them.
type Event struct {
	Type EventType

	// StartMove
	MoveDir MoveDirection
	FaceDir FaceDirection

	// Collision
	Other      ID
	OtherType  Type
	OtherSolid bool
}

// StateType names a behavioral mode.
type StateType int

const (
	StateNone StateType = iota
	StateUninitialized
	StateIdle
	StateMove
	StateAttack
	StateAttackWeapon
	StateCollision
	StateDead
)

var stateNames = map[StateType]string{
	StateNone:          "None",
	StateUninitialized: "Uninitialized",
	StateIdle:          "Idle",
	StateMove:          "Move",
	StateAttack:        "Attack",
	StateAttackWeapon:  "AttackWeapon",
	StateCollision:     "Collision",
	StateDead:          "Dead",
}

func (s StateType) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}
