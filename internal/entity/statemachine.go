package entity

import (
	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/render"
)

type transition struct {
	next StateType
	ev   Event
}

// StateMachine holds the states of an entity and exactly one current state. It starts
// in Uninitialized, which moves to Idle on the Init event.
type StateMachine struct {
	owner     string
	states    map[StateType]*State
	current   *State
	switching bool
	pending   []transition
}

// NewStateMachine creates a machine in the Uninitialized state. owner names the entity
// in log messages.
func NewStateMachine(owner string) *StateMachine {
	sm := &StateMachine{
		owner:  owner,
		states: make(map[StateType]*State),
	}
	uninitialized := sm.RegisterState(StateUninitialized)
	uninitialized.BindAction(EventInit, StateIdle, nil)
	sm.current = uninitialized
	uninitialized.Enter(Event{})
	return sm
}

// RegisterState creates the state of type t. Registering a type twice returns the
// existing state.
func (sm *StateMachine) RegisterState(t StateType) *State {
	if s, ok := sm.states[t]; ok {
		zap.L().Warn("State already registered", zap.String("owner", sm.owner), zap.Stringer("state", t))
		return s
	}
	s := newState(t, sm)
	sm.states[t] = s
	return s
}

// State returns a registered state.
func (sm *StateMachine) State(t StateType) (*State, bool) {
	s, ok := sm.states[t]
	return s, ok
}

// Current returns the type of the current state.
func (sm *StateMachine) Current() StateType {
	return sm.current.typ
}

// CurrentState returns the current state.
func (sm *StateMachine) CurrentState() *State {
	return sm.current
}

// SwitchState exits the current state and enters next. A switch requested while
// another switch is running is applied right after it.
func (sm *StateMachine) SwitchState(next StateType, ev Event) {
	if sm.switching {
		sm.pending = append(sm.pending, transition{next: next, ev: ev})
		return
	}
	sm.apply(next, ev)
	for len(sm.pending) > 0 {
		t := sm.pending[0]
		sm.pending = sm.pending[1:]
		sm.apply(t.next, t.ev)
	}
}

func (sm *StateMachine) apply(next StateType, ev Event) {
	target, ok := sm.states[next]
	if !ok {
		zap.L().Error("Unknown state", zap.String("owner", sm.owner), zap.Stringer("state", next))
		return
	}
	sm.switching = true
	defer func() { sm.switching = false }()

	zap.L().Debug("Switch state",
		zap.String("owner", sm.owner),
		zap.Stringer("from", sm.current.typ),
		zap.Stringer("to", next))
	sm.current.Exit()
	sm.current = target
	sm.current.Enter(ev)
}

// HandleEvent routes ev to the current state.
func (sm *StateMachine) HandleEvent(ev Event) {
	sm.current.HandleEvent(ev)
}

func (sm *StateMachine) Update(dt float64) {
	sm.current.Update(dt)
}

func (sm *StateMachine) DrawTo(target render.Image) {
	sm.current.DrawTo(target)
}

// Intersects tests the colliders of both current states.
func (sm *StateMachine) Intersects(other *StateMachine) bool {
	return sm.current.Intersects(other.current)
}

// Stop exits the current state without entering another.
func (sm *StateMachine) Stop() {
	sm.current.Exit()
}
