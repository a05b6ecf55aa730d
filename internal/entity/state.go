package entity

import (
	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/render"
	"chosenoffset.com/forestadventure/internal/shape"
)

// Action is what a state does with an event: run Do, then switch to Next unless Next is
// StateNone.
type Action struct {
	Next StateType
	Do   func(ev Event)
}

type predicate struct {
	next StateType
	cond func() bool
}

// State is one behavioral mode of an entity. It owns the shape parts shown while it is
// current, the actions bound to events and the predicates that end it.
type State struct {
	typ       StateType
	machine   *StateMachine
	transform *Transform

	parts     []shape.Part
	colliders []shape.Part

	actions    map[EventType]Action
	ignored    map[EventType]bool
	onEnter    []func(ev Event)
	onExit     []func()
	onUpdate   []func(dt float64)
	predicates []predicate
}

func newState(typ StateType, machine *StateMachine) *State {
	return &State{
		typ:     typ,
		machine: machine,
		actions: make(map[EventType]Action),
		ignored: make(map[EventType]bool),
	}
}

// Type returns the state type.
func (s *State) Type() StateType { return s.typ }

// Follow makes the parts track t.
func (s *State) Follow(t *Transform) { s.transform = t }

// AddPart adds a drawn part.
func (s *State) AddPart(p shape.Part) { s.parts = append(s.parts, p) }

// AddCollider adds a part used for collision tests.
func (s *State) AddCollider(p shape.Part) { s.colliders = append(s.colliders, p) }

// Parts returns the drawn parts.
func (s *State) Parts() []shape.Part { return s.parts }

// Colliders returns the collision parts.
func (s *State) Colliders() []shape.Part { return s.colliders }

// BindAction runs do for events of type t and then switches to next. do may be nil and
// next may be StateNone.
func (s *State) BindAction(t EventType, next StateType, do func(ev Event)) {
	s.actions[t] = Action{Next: next, Do: do}
}

// IgnoreEvent drops events of the given types without logging them as unbound.
func (s *State) IgnoreEvent(types ...EventType) {
	for _, t := range types {
		s.ignored[t] = true
	}
}

// OnEnter registers a callback run after the parts are entered.
func (s *State) OnEnter(fn func(ev Event)) { s.onEnter = append(s.onEnter, fn) }

// OnExit registers a callback run before the parts are stopped.
func (s *State) OnExit(fn func()) { s.onExit = append(s.onExit, fn) }

// OnUpdate registers a callback run at the start of every update.
func (s *State) OnUpdate(fn func(dt float64)) { s.onUpdate = append(s.onUpdate, fn) }

// AddPredicate switches to next as soon as cond holds after an update.
func (s *State) AddPredicate(next StateType, cond func() bool) {
	s.predicates = append(s.predicates, predicate{next: next, cond: cond})
}

// Enter activates the parts and runs the enter callbacks.
func (s *State) Enter(ev Event) {
	s.sync()
	for _, p := range s.parts {
		p.Enter()
	}
	for _, p := range s.colliders {
		p.Enter()
	}
	for _, fn := range s.onEnter {
		fn(ev)
	}
}

// Exit runs the exit callbacks and stops the parts.
func (s *State) Exit() {
	for _, fn := range s.onExit {
		fn()
	}
	for _, p := range s.parts {
		p.Exit()
	}
	for _, p := range s.colliders {
		p.Exit()
	}
}

// Update runs the update callbacks, moves the parts to the transform, advances them and
// polls the predicates.
func (s *State) Update(dt float64) {
	for _, fn := range s.onUpdate {
		fn(dt)
		if s.machine.Current() != s.typ {
			return
		}
	}
	s.sync()
	for _, p := range s.parts {
		p.Update(dt)
	}
	for _, p := range s.colliders {
		p.Update(dt)
	}
	for _, pr := range s.predicates {
		if pr.cond() {
			s.machine.SwitchState(pr.next, Event{})
			return
		}
	}
}

func (s *State) sync() {
	if s.transform == nil {
		return
	}
	for _, p := range s.parts {
		p.SetPosition(s.transform.Position)
		p.SetRotation(s.transform.Rotation)
	}
	for _, p := range s.colliders {
		p.SetPosition(s.transform.Position)
		p.SetRotation(s.transform.Rotation)
	}
}

// DrawTo draws the parts and then the colliders.
func (s *State) DrawTo(target render.Image) {
	for _, p := range s.parts {
		p.DrawTo(target)
	}
	for _, p := range s.colliders {
		p.DrawTo(target)
	}
}

// HandleEvent runs the action bound to ev. Ignored and unbound events are dropped.
func (s *State) HandleEvent(ev Event) {
	if s.ignored[ev.Type] {
		return
	}
	action, ok := s.actions[ev.Type]
	if !ok {
		zap.L().Debug("Dropping unbound event",
			zap.String("owner", s.machine.owner),
			zap.Stringer("state", s.typ),
			zap.Stringer("event", ev.Type))
		return
	}
	if action.Do != nil {
		action.Do(ev)
	}
	if action.Next != StateNone {
		s.machine.SwitchState(action.Next, ev)
	}
}

// Intersects reports whether any collider of s overlaps any collider of other.
func (s *State) Intersects(other *State) bool {
	for _, a := range s.colliders {
		for _, b := range other.colliders {
			if a.Intersects(b) {
				return true
			}
		}
	}
	return false
}
