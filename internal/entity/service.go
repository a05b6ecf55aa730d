package entity

import (
	"chosenoffset.com/forestadventure/internal/animation"
	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/message"
	"chosenoffset.com/forestadventure/internal/resource"
)

// Bus is the part of the message bus entities use.
type Bus interface {
	SendMessage(msg message.Message)
	AddSubscriber(id string, types []message.Type, handler message.Handler)
	RemoveSubscriber(id string, types []message.Type)
}

// FrameSource cuts animation frames out of sprite sheets.
type FrameSource interface {
	MakeFrame(data resource.ImageData) animation.ImageFrame
	MakeFrames(data resource.AnimationData) []animation.ImageFrame
}

// Camera follows a moving position.
type Camera interface {
	Track(target func() geom.Vec)
}

// Spawner creates and deletes entities on behalf of other entities. Both requests are
// applied at the end of the current update.
type Spawner interface {
	CreateEntity(data PropertyData)
	DeleteEntity(id ID)
}

// Tuning holds the gameplay constants entities read.
type Tuning struct {
	SwitchTime    float64
	Velocity      float64
	ArrowVelocity float64
	MoleVelocity  float64
	MoleIdleTime  float64
	MoleMoveTime  float64
	DrawColliders bool
}

// DefaultTuning returns the stock gameplay constants.
func DefaultTuning() Tuning {
	return Tuning{
		SwitchTime:    0.1,
		Velocity:      120,
		ArrowVelocity: 300,
		MoleVelocity:  60,
		MoleIdleTime:  1.5,
		MoleMoveTime:  1,
	}
}

// ServiceConfig lists the collaborators of a Service.
type ServiceConfig struct {
	Bus     Bus
	Frames  FrameSource
	Camera  Camera
	Spawner Spawner
	MapRect geom.Rect
	Tuning  Tuning
}

// Service gives entities access to shared systems without exposing them directly.
type Service struct {
	bus     Bus
	frames  FrameSource
	camera  Camera
	spawner Spawner
	mapRect geom.Rect
	tuning  Tuning
}

// NewService creates a service from cfg.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		bus:     cfg.Bus,
		frames:  cfg.Frames,
		camera:  cfg.Camera,
		spawner: cfg.Spawner,
		mapRect: cfg.MapRect,
		tuning:  cfg.Tuning,
	}
}

// MakeAnimation builds a centered animation from sheet data.
func (s *Service) MakeAnimation(data resource.AnimationData) *animation.Animation {
	seq := animation.NewSequence[animation.ImageFrame](s.tuning.SwitchTime)
	for _, f := range s.frames.MakeFrames(data) {
		seq.AddFrame(f)
	}
	seq.SetDefaultIndex(data.DefaultFrame)
	a := animation.NewAnimation(seq)
	a.Center()
	return a
}

// MakeImage builds a centered single frame animation.
func (s *Service) MakeImage(data resource.ImageData) *animation.Animation {
	seq := animation.NewSequence[animation.ImageFrame](s.tuning.SwitchTime)
	seq.AddFrame(s.frames.MakeFrame(data))
	a := animation.NewAnimation(seq)
	a.Center()
	return a
}

// MakeCollider builds a single box collider centered on the entity position.
func (s *Service) MakeCollider(size geom.Vec) *animation.Collider {
	seq := animation.NewSequence[animation.ColliderFrame](s.tuning.SwitchTime)
	seq.AddFrame(animation.NewColliderFrame(size))
	c := animation.NewCollider(seq)
	c.SetVisible(s.tuning.DrawColliders)
	return c
}

func (s *Service) SendMessage(msg message.Message) {
	s.bus.SendMessage(msg)
}

func (s *Service) AddSubscriber(id string, types []message.Type, handler message.Handler) {
	s.bus.AddSubscriber(id, types, handler)
}

func (s *Service) RemoveSubscriber(id string, types []message.Type) {
	s.bus.RemoveSubscriber(id, types)
}

// Camera returns the camera, which may be nil.
func (s *Service) Camera() Camera { return s.camera }

// IsInsideMap reports whether pos lies on the map.
func (s *Service) IsInsideMap(pos geom.Vec) bool {
	return s.mapRect.Contains(pos)
}


// Tuning returns the gameplay constants.
func (s *Service) Tuning() Tuning { return s.tuning }

// CreateEntity asks for a new entity at the end of the current update.
func (s *Service) CreateEntity(data PropertyData) {
	s.spawner.CreateEntity(data)
}

// DeleteEntity asks for id to be removed at the end of the current update.
func (s *Service) DeleteEntity(id ID) {
	s.spawner.DeleteEntity(id)
}
