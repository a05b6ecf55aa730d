package entity

import (
	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/message"
	"chosenoffset.com/forestadventure/internal/render"
	"chosenoffset.com/forestadventure/internal/resource"
)

// Sheet names of the built-in kinds.
const (
	SheetPlayer = "player"
	SheetMole   = "mole"
	SheetArrow  = "arrow"
	SheetCoin   = "coin"
)

// Sound names sent in PlaySound messages.
const (
	SoundShoot = "shoot"
	SoundHit   = "hit"
	SoundCoin  = "coin"
)

// PlayerSheetCols and PlayerSheetRows give the grid of the player sheet.
const (
	PlayerSheetCols = 4
	PlayerSheetRows = 13
)

var playerColliderSize = geom.Vec{X: 16, Y: 16}

// facingAnimations lays out a state with rows for Down, Up and Right starting at row;
// Left mirrors Right.
func facingAnimations(sheet string, row, frames int) map[FaceDirection]resource.AnimationData {
	right := resource.AnimationData{SheetID: sheet, Start: resource.Position{Row: row + 2}, FrameCount: frames}
	return map[FaceDirection]resource.AnimationData{
		FaceDown:  {SheetID: sheet, Start: resource.Position{Row: row}, FrameCount: frames},
		FaceUp:    {SheetID: sheet, Start: resource.Position{Row: row + 1}, FrameCount: frames},
		FaceRight: right,
		FaceLeft:  resource.MirrorX(right),
	}
}

var keyDirections = map[render.Key]MoveDirection{
	render.KeyUp:    MoveUp,
	render.KeyW:     MoveUp,
	render.KeyDown:  MoveDown,
	render.KeyS:     MoveDown,
	render.KeyLeft:  MoveLeft,
	render.KeyA:     MoveLeft,
	render.KeyRight: MoveRight,
	render.KeyD:     MoveRight,
}

// PlayerDefinition describes the player: moved by the arrow keys or WASD, Space
// attacks, F shoots an arrow. Touching a mole kills it.
func PlayerDefinition() *Definition {
	return &Definition{
		Type:  TypePlayer,
		Layer: LayerGround,
		Messages: []message.Type{
			message.TypeIsKeyPressed,
			message.TypeKeyReleased,
			message.TypeKeyPressed,
		},
		RegisterProperties: func(e *Entity) {
			velocity := e.data.Velocity
			if velocity <= 0 {
				velocity = e.service.Tuning().Velocity
			}
			e.AddMovement(velocity)
			Add(e.props, PropertyScore, &Score{})
			if cam := e.service.Camera(); cam != nil {
				t := e.Transform()
				Add(e.props, PropertyCamera, cam)
				cam.Track(func() geom.Vec { return t.Position })
			}
		},
		RegisterStates: registerPlayerStates,
		OnMessage:      onPlayerMessage,
	}
}

func onPlayerMessage(e *Entity, msg message.Message) {
	switch m := msg.(type) {
	case message.IsKeyPressed:
		if dir, ok := keyDirections[m.Key]; ok {
			e.HandleEvent(Event{Type: EventStartMove, MoveDir: dir, FaceDir: dir.Face()})
		}
	case message.KeyReleased:
		if dir, ok := keyDirections[m.Key]; ok && e.Movement().Direction() == dir {
			e.HandleEvent(Event{Type: EventStopMove})
		}
	case message.KeyPressed:
		switch m.Key {
		case render.KeySpace:
			e.HandleEvent(Event{Type: EventAttack})
		case render.KeyF:
			e.HandleEvent(Event{Type: EventAttackWeapon})
		}
	}
}

func registerPlayerStates(e *Entity) {
	movement := e.Movement()
	facing := e.Facing()

	startMove := func(ev Event) {
		movement.SetDirection(ev.MoveDir)
		facing.Dir = ev.FaceDir
	}
	onCollision := func(ev Event) {
		switch {
		case ev.OtherType == TypeCoin:
			if score, err := Get[*Score](e.props, PropertyScore); err == nil {
				score.Coins++
			}
		case ev.OtherType == TypeMole:
			e.SwitchState(StateDead)
		case ev.OtherSolid:
			movement.Revert()
		}
	}

	idle := e.RegisterState(StateIdle)
	idle.AddPart(e.FacingPart(facingAnimations(SheetPlayer, 0, 1)))
	idle.AddCollider(e.ColliderPart(playerColliderSize))
	idle.BindAction(EventStartMove, StateMove, startMove)
	idle.BindAction(EventAttack, StateAttack, nil)
	idle.BindAction(EventAttackWeapon, StateAttackWeapon, nil)
	idle.BindAction(EventCollision, StateNone, onCollision)
	idle.BindAction(EventDead, StateDead, nil)
	idle.IgnoreEvent(EventStopMove)

	move := e.RegisterState(StateMove)
	move.AddPart(e.FacingPart(facingAnimations(SheetPlayer, 3, 4)))
	move.AddCollider(e.ColliderPart(playerColliderSize))
	move.OnUpdate(func(dt float64) { movement.Update(dt) })
	move.OnExit(func() { movement.SetDirection(MoveNone) })
	move.BindAction(EventStartMove, StateNone, startMove)
	move.BindAction(EventStopMove, StateIdle, nil)
	move.BindAction(EventAttack, StateAttack, nil)
	move.BindAction(EventAttackWeapon, StateAttackWeapon, nil)
	move.BindAction(EventCollision, StateNone, onCollision)
	move.BindAction(EventDead, StateDead, nil)

	attackPart := e.FacingPart(facingAnimations(SheetPlayer, 6, 4))
	attack := e.RegisterState(StateAttack)
	attack.AddPart(attackPart)
	attack.AddCollider(e.ColliderPart(playerColliderSize))
	attack.AddPredicate(StateIdle, attackPart.IsCompleted)
	attack.BindAction(EventCollision, StateNone, onCollision)
	attack.BindAction(EventDead, StateDead, nil)
	attack.IgnoreEvent(EventStartMove, EventStopMove, EventAttack, EventAttackWeapon)

	shootPart := e.FacingPart(facingAnimations(SheetPlayer, 9, 4))
	shoot := e.RegisterState(StateAttackWeapon)
	shoot.AddPart(shootPart)
	shoot.AddCollider(e.ColliderPart(playerColliderSize))
	shoot.AddPredicate(StateIdle, shootPart.IsCompleted)
	shoot.OnExit(func() {
		if !shootPart.IsCompleted() {
			return
		}
		spawnArrow(e)
		e.service.SendMessage(message.PlaySound{Sound: SoundShoot})
	})
	shoot.BindAction(EventCollision, StateNone, onCollision)
	shoot.BindAction(EventDead, StateDead, nil)
	shoot.IgnoreEvent(EventStartMove, EventStopMove, EventAttack, EventAttackWeapon)

	dead := e.RegisterState(StateDead)
	dead.AddPart(e.AnimationPart(resource.AnimationData{SheetID: SheetPlayer, Start: resource.Position{Row: 12}, FrameCount: 4}))
	dead.OnEnter(func(Event) {
		movement.SetDirection(MoveNone)
		e.EnableInput(false)
		zap.L().Info("Player died", zap.String("entity", e.Name()))
		e.service.SendMessage(message.PlayerDied{})
	})
	dead.IgnoreEvent(EventStartMove, EventStopMove, EventAttack, EventAttackWeapon, EventCollision, EventDead)
}

// spawnArrow creates an arrow just in front of the player.
func spawnArrow(e *Entity) {
	dir := e.Facing().Dir
	offset := dir.Move().Vector().Scale(playerColliderSize.X)
	e.service.CreateEntity(PropertyData{
		Type:     TypeArrow,
		Position: e.Transform().Position.Add(offset),
		FaceDir:  dir,
		Velocity: e.service.Tuning().ArrowVelocity,
	})
}

// Score returns the number of coins the entity collected, or zero when it does not
// keep a score.
func (e *Entity) Score() int {
	s, err := Get[*Score](e.props, PropertyScore)
	if err != nil {
		return 0
	}
	return s.Coins
}
