package animation

import (
	"chosenoffset.com/forestadventure/internal/core/geom"
	"chosenoffset.com/forestadventure/internal/render"
)

// Snapshot describes an animation right after an update.
type Snapshot struct {
	Index      int
	FrameCount int
	Running    bool
	Completed  bool
}

// Observer is notified at the end of every Update.
type Observer interface {
	AnimationUpdated(s Snapshot)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s Snapshot)

func (f ObserverFunc) AnimationUpdated(s Snapshot) { f(s) }

// Animation plays an image sequence on a sprite.
type Animation struct {
	sprite   *Sprite
	seq      *Sequence[ImageFrame]
	center   bool
	observer Observer
}

// NewAnimation wraps seq. The first frame is shown right away.
func NewAnimation(seq *Sequence[ImageFrame]) *Animation {
	a := &Animation{sprite: NewSprite(), seq: seq}
	a.applyFrame()
	return a
}

// Center makes the sprite origin follow the center of each frame.
func (a *Animation) Center() {
	a.center = true
	a.applyFrame()
}

// RegisterObserver sets the observer called after each update. Only one observer is
// kept.
func (a *Animation) RegisterObserver(o Observer) {
	a.observer = o
}

func (a *Animation) Start() {
	a.seq.Start()
	a.applyFrame()
}

func (a *Animation) Stop() {
	a.seq.Stop()
	a.applyFrame()
}

// Update advances the sequence and shows the current frame.
func (a *Animation) Update(dt float64) {
	if a.seq.IsEmpty() {
		return
	}
	a.seq.Update(dt)
	a.applyFrame()
	if a.observer != nil {
		a.observer.AnimationUpdated(a.Snapshot())
	}
}

func (a *Animation) applyFrame() {
	if a.seq.IsEmpty() {
		return
	}
	f := a.seq.Current()
	a.sprite.SetFrame(f)
	if a.center {
		a.sprite.SetOrigin(f.Center)
	}
}

// Snapshot returns the current progression state.
func (a *Animation) Snapshot() Snapshot {
	return Snapshot{
		Index:      a.seq.Index(),
		FrameCount: a.seq.Len(),
		Running:    a.seq.IsRunning(),
		Completed:  a.seq.IsCompleted(),
	}
}

func (a *Animation) DrawTo(target render.Image) { a.sprite.DrawTo(target) }
func (a *Animation) Bounds() geom.Rect          { return a.sprite.GlobalBounds() }
func (a *Animation) SetPosition(p geom.Vec)     { a.sprite.SetPosition(p) }
func (a *Animation) SetRotation(deg float64)    { a.sprite.SetRotation(deg) }
func (a *Animation) SetScale(s geom.Vec)        { a.sprite.SetScale(s) }
func (a *Animation) IsCompleted() bool          { return a.seq.IsCompleted() }
func (a *Animation) IsRunning() bool            { return a.seq.IsRunning() }
func (a *Animation) IsEmpty() bool              { return a.seq.IsEmpty() }

// Intersects reports whether the global bounds of both animations overlap.
func (a *Animation) Intersects(other *Animation) bool {
	return a.Bounds().Intersects(other.Bounds())
}
