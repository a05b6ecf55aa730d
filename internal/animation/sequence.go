package animation

import "go.uber.org/zap"

// Sequence steps through an ordered list of frames at a fixed switch time.
type Sequence[F Frame] struct {
	frames       []F
	switchTime   float64
	defaultIndex int
	index        int
	elapsed      float64
	running      bool
	completed    bool
}

// NewSequence creates an empty, stopped sequence.
func NewSequence[F Frame](switchTime float64) *Sequence[F] {
	return &Sequence[F]{switchTime: switchTime}
}

// AddFrame appends a frame. Frames can only be added while stopped and invalid frames
// are dropped.
func (s *Sequence[F]) AddFrame(frame F) {
	if s.running {
		zap.L().Warn("Can't add frame during animation", zap.Int("frames", len(s.frames)))
		return
	}
	if !frame.Valid() {
		zap.L().Warn("Frame is invalid", zap.Int("index", len(s.frames)))
		return
	}
	s.frames = append(s.frames, frame)
}

// SetDefaultIndex sets the index the sequence starts from and wraps back to. The
// index must refer to a frame already added.
func (s *Sequence[F]) SetDefaultIndex(i int) {
	if i < 0 || i >= len(s.frames) {
		zap.L().Warn("Default frame index out of range", zap.Int("index", i), zap.Int("frames", len(s.frames)))
		return
	}
	s.defaultIndex = i
	if !s.running {
		s.index = i
	}
}

// Start rewinds to the default index and lets Update advance frames.
func (s *Sequence[F]) Start() {
	if len(s.frames) == 0 {
		zap.L().Warn("Can't start animation, no frames")
		return
	}
	s.rewind()
	s.running = true
}

// Stop rewinds to the default index and halts advancement.
func (s *Sequence[F]) Stop() {
	s.rewind()
	s.running = false
}

func (s *Sequence[F]) rewind() {
	s.index = s.defaultIndex
	s.elapsed = 0
	s.completed = false
}

// Update accumulates dt and moves to the next frame once the switch time is reached.
// The remainder past the switch time is discarded.
func (s *Sequence[F]) Update(dt float64) {
	if !s.running || len(s.frames) == 0 {
		return
	}
	s.elapsed += dt
	if s.elapsed < s.switchTime {
		return
	}
	s.elapsed = 0
	s.index++
	if s.index >= len(s.frames) {
		s.index = s.defaultIndex
		s.completed = true
	}
}

// Current returns the active frame, or the zero frame when the sequence is empty.
func (s *Sequence[F]) Current() F {
	if s.index >= len(s.frames) {
		var zero F
		return zero
	}
	return s.frames[s.index]
}

func (s *Sequence[F]) IsEmpty() bool     { return len(s.frames) == 0 }
func (s *Sequence[F]) IsRunning() bool   { return s.running }
func (s *Sequence[F]) IsCompleted() bool { return s.completed }
func (s *Sequence[F]) Len() int          { return len(s.frames) }
func (s *Sequence[F]) Index() int        { return s.index }
