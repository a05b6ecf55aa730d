// Package entity implements the game actors: a closed set of kinds, each described by a
// Definition, composed from a state machine, a property store and the entity service.
package entity

import (
	"fmt"

	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/message"
	"chosenoffset.com/forestadventure/internal/render"
	"chosenoffset.com/forestadventure/internal/resource"
	"chosenoffset.com/forestadventure/internal/shape"
)

// Definition describes one entity kind. Every hook is optional.
type Definition struct {
	Type  Type
	Layer LayerType
	// Static entities never move, so two static entities are never tested for
	// collisions against each other.
	Static bool
	// Solid entities block movement.
	Solid bool
	// Messages are the message types the entity subscribes to.
	Messages []message.Type

	RegisterProperties func(e *Entity)
	ReadProperties     func(e *Entity, props Properties)
	RegisterStates     func(e *Entity)
	OnInit             func(e *Entity)
	OnMessage          func(e *Entity, msg message.Message)
	OnBeginDie         func(e *Entity)
}

// Entity is a live game actor.
type Entity struct {
	id           ID
	def          *Definition
	data         PropertyData
	service      *Service
	props        *Store
	sm           *StateMachine
	inputEnabled bool
	destroyed    bool
}

func newEntity(id ID, def *Definition, data PropertyData, service *Service) *Entity {
	e := &Entity{
		id:           id,
		def:          def,
		data:         data,
		service:      service,
		props:        NewStore(),
		inputEnabled: true,
	}
	e.sm = NewStateMachine(e.Name())
	return e
}

// Init runs the construction hooks, subscribes to the kind's messages and delivers the
// Init event, which moves the entity from Uninitialized to Idle.
func (e *Entity) Init() {
	e.registerBaseProperties()
	if e.def.RegisterProperties != nil {
		e.def.RegisterProperties(e)
	}
	if e.def.ReadProperties != nil {
		e.def.ReadProperties(e, e.data.Properties)
	}
	if e.def.RegisterStates != nil {
		e.def.RegisterStates(e)
	}
	if e.def.OnInit != nil {
		e.def.OnInit(e)
	}
	if len(e.def.Messages) > 0 {
		e.service.AddSubscriber(e.Name(), e.def.Messages, e.onMessage)
	}
	e.HandleEvent(Event{Type: EventInit})
}

func (e *Entity) registerBaseProperties() {
	scale := e.data.Scale
	if scale == (geom.Vec{}) {
		scale = geom.Vec{X: 1, Y: 1}
	}
	Add(e.props, PropertyTransform, &Transform{Position: e.data.Position, Scale: scale})

	dir := e.data.FaceDir
	if dir == FaceUndefined {
		dir = FaceDown
	}
	Add(e.props, PropertyFaceDirection, &Facing{Dir: dir})
}

func (e *Entity) onMessage(msg message.Message) {
	if e.destroyed {
		return
	}
	switch msg.Type() {
	case message.TypeKeyPressed, message.TypeKeyReleased, message.TypeIsKeyPressed:
		if !e.inputEnabled {
			return
		}
	}
	if e.def.OnMessage != nil {
		e.def.OnMessage(e, msg)
	}
}

// Update advances the current state.
func (e *Entity) Update(dt float64) {
	if e.destroyed {
		return
	}
	e.sm.Update(dt)
}

// DrawTo draws the current state.
func (e *Entity) DrawTo(target render.Image) {
	if e.destroyed {
		return
	}
	e.sm.DrawTo(target)
}

// HandleEvent routes ev into the state machine.
func (e *Entity) HandleEvent(ev Event) {
	if e.destroyed {
		return
	}
	e.sm.HandleEvent(ev)
}

// SwitchState switches state directly, without an event binding.
func (e *Entity) SwitchState(next StateType) {
	e.sm.SwitchState(next, Event{})
}

// EnableInput turns input messages on or off. Drawing and movement are not affected.
func (e *Entity) EnableInput(enable bool) {
	e.inputEnabled = enable
}

// Destroy runs the die hook, unsubscribes and stops the current state.
func (e *Entity) Destroy() {
	if e.destroyed {
		return
	}
	if e.def.OnBeginDie != nil {
		e.def.OnBeginDie(e)
	}
	if len(e.def.Messages) > 0 {
		e.service.RemoveSubscriber(e.Name(), e.def.Messages)
	}
	e.sm.Stop()
	e.destroyed = true
}

// Intersects reports whether the colliders of both entities overlap.
func (e *Entity) Intersects(other *Entity) bool {
	return e.sm.Intersects(other.sm)
}

func (e *Entity) ID() ID                      { return e.id }
func (e *Entity) Type() Type                  { return e.def.Type }
func (e *Entity) Layer() LayerType            { return e.def.Layer }
func (e *Entity) IsStatic() bool              { return e.def.Static }
func (e *Entity) IsSolid() bool               { return e.def.Solid }
func (e *Entity) InputEnabled() bool          { return e.inputEnabled }
func (e *Entity) Data() PropertyData          { return e.data }
func (e *Entity) Service() *Service           { return e.service }
func (e *Entity) Properties() *Store          { return e.props }
func (e *Entity) StateMachine() *StateMachine { return e.sm }

// Name identifies the entity on the message bus and in logs, e.g. "Player-3".
func (e *Entity) Name() string {
	return fmt.Sprintf("%s-%d", e.def.Type, e.id)
}

// RegisterState creates a state whose parts follow the entity transform.
func (e *Entity) RegisterState(t StateType) *State {
	s := e.sm.RegisterState(t)
	s.Follow(e.Transform())
	return s
}

// Transform returns the entity transform.
func (e *Entity) Transform() *Transform {
	t, err := Get[*Transform](e.props, PropertyTransform)
	if err != nil {
		zap.L().Error("Transform lookup failed", zap.String("entity", e.Name()), zap.Error(err))
		return &Transform{}
	}
	return t
}

// Facing returns the entity face direction.
func (e *Entity) Facing() *Facing {
	f, err := Get[*Facing](e.props, PropertyFaceDirection)
	if err != nil {
		zap.L().Error("Face direction lookup failed", zap.String("entity", e.Name()), zap.Error(err))
		return &Facing{}
	}
	return f
}

// Movement returns the entity movement, or nil when the kind does not move.
func (e *Entity) Movement() *Movement {
	m, err := Get[*Movement](e.props, PropertyMovement)
	if err != nil {
		return nil
	}
	return m
}

// AddMovement registers a movement property with the given velocity.
func (e *Entity) AddMovement(velocity float64) *Movement {
	return Add(e.props, PropertyMovement, NewMovement(e.Transform(), velocity))
}

// FacingPart builds a part showing one animation per face direction, selected by the
// current facing.
func (e *Entity) FacingPart(anims map[FaceDirection]resource.AnimationData) shape.Part {
	facing := e.Facing()
	part := shape.NewMultiAnimationPart(func() FaceDirection { return facing.Dir })
	for dir, data := range anims {
		part.Register(dir, e.service.MakeAnimation(data))
	}
	return part
}

// AnimationPart builds a part showing a single animation.
func (e *Entity) AnimationPart(data resource.AnimationData) shape.Part {
	return shape.NewAnimationPart(e.service.MakeAnimation(data))
}

// ImagePart builds a part showing a single frame.
func (e *Entity) ImagePart(data resource.ImageData) shape.Part {
	return shape.NewAnimationPart(e.service.MakeImage(data))
}

// ColliderPart builds a collision box of the given size.
func (e *Entity) ColliderPart(size geom.Vec) shape.Part {
	return shape.NewAnimationPart(e.service.MakeCollider(size))
}
