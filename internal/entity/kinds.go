package entity

import (
	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/message"
	"chosenoffset.com/forestadventure/internal/resource"
)

// CoinSheetCols is the number of frames of the spinning coin.
const CoinSheetCols = 4

var (
	arrowColliderSize = geom.Vec{X: 12, Y: 4}
	coinColliderSize  = geom.Vec{X: 10, Y: 10}
)

// ArrowDefinition describes an arrow flying along its facing until it leaves the map
// or hits a mole or a solid rect.
func ArrowDefinition() *Definition {
	return &Definition{
		Type:  TypeArrow,
		Layer: LayerAir,
		RegisterProperties: func(e *Entity) {
			velocity := e.data.Velocity
			if velocity <= 0 {
				velocity = e.service.Tuning().ArrowVelocity
			}
			e.AddMovement(velocity)
			e.Transform().Rotation = e.Facing().Dir.Rotation()
		},
		RegisterStates: func(e *Entity) {
			movement := e.Movement()
			onCollision := func(ev Event) {
				if ev.OtherType == TypeMole || (ev.OtherType == TypeRect && ev.OtherSolid) {
					e.service.DeleteEntity(e.id)
				}
			}

			idle := e.RegisterState(StateIdle)
			idle.AddPart(e.ImagePart(resource.ImageData{SheetID: SheetArrow}))
			idle.AddCollider(e.ColliderPart(arrowColliderSize))
			idle.AddPredicate(StateMove, func() bool { return true })
			idle.BindAction(EventCollision, StateNone, onCollision)

			move := e.RegisterState(StateMove)
			move.AddPart(e.ImagePart(resource.ImageData{SheetID: SheetArrow}))
			move.AddCollider(e.ColliderPart(arrowColliderSize))
			move.OnEnter(func(Event) { movement.SetDirection(e.Facing().Dir.Move()) })
			move.OnUpdate(func(dt float64) {
				movement.Update(dt)
				if !e.service.IsInsideMap(e.Transform().Position) {
					e.service.DeleteEntity(e.id)
				}
			})
			move.BindAction(EventCollision, StateNone, onCollision)
		},
	}
}

// CoinDefinition describes a spinning coin the player picks up.
func CoinDefinition() *Definition {
	return &Definition{
		Type:   TypeCoin,
		Layer:  LayerGround,
		Static: true,
		RegisterStates: func(e *Entity) {
			idle := e.RegisterState(StateIdle)
			idle.AddPart(e.AnimationPart(resource.AnimationData{SheetID: SheetCoin, FrameCount: CoinSheetCols}))
			idle.AddCollider(e.ColliderPart(coinColliderSize))
			idle.BindAction(EventCollision, StateNone, func(ev Event) {
				if ev.OtherType != TypePlayer {
					return
				}
				e.service.SendMessage(message.PlaySound{Sound: SoundCoin})
				e.service.DeleteEntity(e.id)
			})
		},
	}
}

// EntranceDefinition describes an invisible trigger sending the player to the map
// named by its "Map" property.
func EntranceDefinition() *Definition {
	return &Definition{
		Type:   TypeEntrance,
		Layer:  LayerGround,
		Static: true,
		RegisterStates: func(e *Entity) {
			mapName := e.data.Properties.GetString("Map", "")
			if mapName == "" {
				zap.L().Warn("Entrance without map", zap.String("entity", e.Name()))
			}
			entered := false
			idle := e.RegisterState(StateIdle)
			idle.AddCollider(e.ColliderPart(e.data.Size))
			idle.BindAction(EventCollision, StateNone, func(ev Event) {
				if ev.OtherType != TypePlayer || entered {
					return
				}
				entered = true
				e.service.SendMessage(message.EnterLevel{Map: mapName})
			})
		},
	}
}

// RectDefinition describes an invisible solid block.
func RectDefinition() *Definition {
	return &Definition{
		Type:   TypeRect,
		Layer:  LayerGround,
		Static: true,
		Solid:  true,
		RegisterStates: func(e *Entity) {
			idle := e.RegisterState(StateIdle)
			idle.AddCollider(e.ColliderPart(e.data.Size))
			idle.IgnoreEvent(EventCollision)
		},
	}
}
