// Package shape provides the drawable and collidable pieces an entity state is made of.
package shape

//go:generate mockgen -destination=mock/mock_part.go -package=shapemock chosenoffset.com/forestadventure/internal/shape Part

import (
	"go.uber.org/zap"

	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/render"
)

// Part is one piece of an entity shape: a sprite animation or a collider.
type Part interface {
	// Enter restarts the active animation.
	Enter()
	// Exit stops all animations of the part.
	Exit()
	Update(dt float64)
	DrawTo(target render.Image)
	Bounds() geom.Rect
	Intersects(other Part) bool
	SetPosition(p geom.Vec)
	SetRotation(deg float64)
	// IsCompleted reports whether the active animation finished a full cycle.
	IsCompleted() bool
}

// Animator is what a part drives. Both animation.Animation and animation.Collider
// satisfy it.
type Animator interface {
	Start()
	Stop()
	Update(dt float64)
	DrawTo(target render.Image)
	Bounds() geom.Rect
	SetPosition(p geom.Vec)
	SetRotation(deg float64)
	IsCompleted() bool
	IsRunning() bool
}

// Intersects reports whether the bounds of a and b overlap on both axes with a
// nonzero area.
func Intersects(a, b Part) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Bounds().Intersects(b.Bounds())
}

// AnimationPart drives a single animator.
type AnimationPart struct {
	animator Animator
}

// NewAnimationPart wraps animator.
func NewAnimationPart(animator Animator) *AnimationPart {
	return &AnimationPart{animator: animator}
}

func (p *AnimationPart) Enter()                     { p.animator.Start() }
func (p *AnimationPart) Exit()                      { p.animator.Stop() }
func (p *AnimationPart) Update(dt float64)          { p.animator.Update(dt) }
func (p *AnimationPart) DrawTo(target render.Image) { p.animator.DrawTo(target) }
func (p *AnimationPart) Bounds() geom.Rect          { return p.animator.Bounds() }
func (p *AnimationPart) Intersects(other Part) bool { return Intersects(p, other) }
func (p *AnimationPart) SetPosition(pos geom.Vec)   { p.animator.SetPosition(pos) }
func (p *AnimationPart) SetRotation(deg float64)    { p.animator.SetRotation(deg) }
func (p *AnimationPart) IsCompleted() bool          { return p.animator.IsCompleted() }

// MultiAnimationPart holds one animator per key and drives the one picked by a selector,
// typically the entity facing direction. The selector is polled on Enter and Update.
type MultiAnimationPart[K comparable] struct {
	animators map[K]Animator
	selector  func() K
	key       K
	active    Animator
	position  geom.Vec
	rotation  float64
}

// NewMultiAnimationPart creates a part selecting its animator with selector. A nil
// selector leaves key changes to SetKey.
func NewMultiAnimationPart[K comparable](selector func() K) *MultiAnimationPart[K] {
	return &MultiAnimationPart[K]{
		animators: make(map[K]Animator),
		selector:  selector,
	}
}

// Register adds the animator used for key.
func (p *MultiAnimationPart[K]) Register(key K, animator Animator) {
	p.animators[key] = animator
}

// Key returns the active key.
func (p *MultiAnimationPart[K]) Key() K {
	return p.key
}

func (p *MultiAnimationPart[K]) Enter() {
	if p.selector != nil {
		p.key = p.selector()
	}
	p.active = p.lookup(p.key)
	if p.active == nil {
		return
	}
	p.sync(p.active)
	p.active.Start()
}

func (p *MultiAnimationPart[K]) Exit() {
	for _, a := range p.animators {
		a.Stop()
	}
}

// SetKey switches to the animator for key. Progression is not restarted when the
// target is already running.
func (p *MultiAnimationPart[K]) SetKey(key K) {
	if key == p.key && p.active != nil {
		return
	}
	next := p.lookup(key)
	if next == nil {
		return
	}
	p.key = key
	p.active = next
	p.sync(next)
	if !next.IsRunning() {
		next.Start()
	}
}

func (p *MultiAnimationPart[K]) Update(dt float64) {
	if p.selector != nil {
		if key := p.selector(); key != p.key {
			p.SetKey(key)
		}
	}
	if p.active != nil {
		p.active.Update(dt)
	}
}

func (p *MultiAnimationPart[K]) DrawTo(target render.Image) {
	if p.active != nil {
		p.active.DrawTo(target)
	}
}

func (p *MultiAnimationPart[K]) Bounds() geom.Rect {
	if p.active == nil {
		return geom.Rect{}
	}
	return p.active.Bounds()
}

func (p *MultiAnimationPart[K]) Intersects(other Part) bool {
	return Intersects(p, other)
}

func (p *MultiAnimationPart[K]) SetPosition(pos geom.Vec) {
	p.position = pos
	if p.active != nil {
		p.active.SetPosition(pos)
	}
}

func (p *MultiAnimationPart[K]) SetRotation(deg float64) {
	p.rotation = deg
	if p.active != nil {
		p.active.SetRotation(deg)
	}
}

func (p *MultiAnimationPart[K]) IsCompleted() bool {
	return p.active != nil && p.active.IsCompleted()
}

func (p *MultiAnimationPart[K]) lookup(key K) Animator {
	a, ok := p.animators[key]
	if !ok {
		zap.L().Error("No animation for key", zap.Any("key", key))
		return nil
	}
	return a
}

func (p *MultiAnimationPart[K]) sync(a Animator) {
	a.SetPosition(p.position)
	a.SetRotation(p.rotation)
}
