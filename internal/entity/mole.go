package entity

import (
	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/message"
	"chosenoffset.com/forestadventure/internal/resource"
)

// MoleSheetCols and MoleSheetRows give the grid of the mole sheet.
const (
	MoleSheetCols = 4
	MoleSheetRows = 7
)

var moleColliderSize = geom.Vec{X: 14, Y: 14}

// MoleDefinition describes the mole: it alternates between resting and walking along
// its facing, turns around at the map edge and dies when hit by an arrow.
func MoleDefinition() *Definition {
	return &Definition{
		Type:  TypeMole,
		Layer: LayerGround,
		RegisterProperties: func(e *Entity) {
			velocity := e.data.Velocity
			if velocity <= 0 {
				velocity = e.service.Tuning().MoleVelocity
			}
			e.AddMovement(velocity)
			Add(e.props, PropertyTimer, &Timer{})
		},
		ReadProperties: func(e *Entity, props Properties) {
			if dir := ParseFaceDirection(props.GetString("FaceDirection", "")); dir != FaceUndefined {
				e.Facing().Dir = dir
			}
		},
		RegisterStates: registerMoleStates,
	}
}

func registerMoleStates(e *Entity) {
	movement := e.Movement()
	facing := e.Facing()
	timer, _ := Get[*Timer](e.props, PropertyTimer)
	tuning := e.service.Tuning()

	onCollision := func(ev Event) {
		switch {
		case ev.OtherType == TypeArrow:
			e.SwitchState(StateCollision)
		case ev.OtherSolid:
			movement.Revert()
		}
	}

	idle := e.RegisterState(StateIdle)
	idle.AddPart(e.FacingPart(facingAnimations(SheetMole, 0, 4)))
	idle.AddCollider(e.ColliderPart(moleColliderSize))
	idle.OnEnter(func(Event) { timer.Reset(tuning.MoleIdleTime) })
	idle.OnUpdate(func(dt float64) {
		if timer.Add(dt) {
			dir := facing.Dir
			e.HandleEvent(Event{Type: EventStartMove, MoveDir: dir.Move(), FaceDir: dir})
		}
	})
	idle.BindAction(EventStartMove, StateMove, func(ev Event) {
		movement.SetDirection(ev.MoveDir)
		facing.Dir = ev.FaceDir
	})
	idle.BindAction(EventCollision, StateNone, onCollision)

	move := e.RegisterState(StateMove)
	move.AddPart(e.FacingPart(facingAnimations(SheetMole, 3, 4)))
	move.AddCollider(e.ColliderPart(moleColliderSize))
	move.OnEnter(func(Event) { timer.Reset(tuning.MoleMoveTime) })
	move.OnUpdate(func(dt float64) {
		movement.Update(dt)
		if !e.service.IsInsideMap(e.Transform().Position) {
			movement.Revert()
			facing.Dir = facing.Dir.Opposite()
			movement.SetDirection(facing.Dir.Move())
		}
		if timer.Add(dt) {
			e.HandleEvent(Event{Type: EventStopMove})
		}
	})
	move.OnExit(func() {
		movement.SetDirection(MoveNone)
		facing.Dir = facing.Dir.Clockwise()
	})
	move.BindAction(EventStopMove, StateIdle, nil)
	move.BindAction(EventCollision, StateNone, onCollision)

	hitPart := e.AnimationPart(resource.AnimationData{SheetID: SheetMole, Start: resource.Position{Row: 6}, FrameCount: 4})
	hit := e.RegisterState(StateCollision)
	hit.AddPart(hitPart)
	hit.OnEnter(func(Event) {
		movement.SetDirection(MoveNone)
		e.service.SendMessage(message.PlaySound{Sound: SoundHit})
	})
	hit.AddPredicate(StateDead, hitPart.IsCompleted)
	hit.IgnoreEvent(EventCollision)

	dead := e.RegisterState(StateDead)
	dead.OnEnter(func(Event) { e.service.DeleteEntity(e.id) })
	dead.IgnoreEvent(EventCollision)
}
