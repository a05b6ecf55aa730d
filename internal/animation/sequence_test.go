package animation

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"chosenoffset.com/forestadventure/internal/render/rendertest"
)

func observeWarnings(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func frames(n int) []ImageFrame {
	tex := rendertest.NewImage(n*10, 10)
	out := make([]ImageFrame, n)
	for i := range out {
		out[i] = NewImageFrame(tex, image.Rect(i*10, 0, i*10+10, 10), false)
	}
	return out
}

func startedSequence(n int) *Sequence[ImageFrame] {
	seq := NewSequence[ImageFrame](0.01)
	for _, f := range frames(n) {
		seq.AddFrame(f)
	}
	seq.Start()
	return seq
}

func TestSequenceAdvancesOnSwitchTime(t *testing.T) {
	seq := startedSequence(3)

	seq.Update(0.01)
	assert.Equal(t, 1, seq.Index())
	seq.Update(0.01)
	assert.Equal(t, 2, seq.Index())
	assert.False(t, seq.IsCompleted())

	seq.Update(0.01)
	assert.Equal(t, 0, seq.Index(), "wraps to the default index")
	assert.True(t, seq.IsCompleted())
}

func TestSequenceDoesNotAdvanceBeforeSwitchTime(t *testing.T) {
	seq := startedSequence(3)

	seq.Update(0.005)
	assert.Equal(t, 0, seq.Index())
}

func TestSequenceDiscardsRemainder(t *testing.T) {
	seq := startedSequence(3)

	seq.Update(0.019)
	assert.Equal(t, 1, seq.Index())
	seq.Update(0.005)
	assert.Equal(t, 1, seq.Index())
}

func TestSequenceStopHoldsDefaultIndex(t *testing.T) {
	seq := startedSequence(3)
	seq.Update(0.01)
	require.Equal(t, 1, seq.Index())

	seq.Stop()
	for i := 0; i < 5; i++ {
		seq.Update(0.01)
		assert.Equal(t, 0, seq.Index())
	}

	seq.Start()
	seq.Update(0.01)
	assert.Equal(t, 1, seq.Index())
}

func TestSequenceWrapsToCustomDefaultIndex(t *testing.T) {
	seq := NewSequence[ImageFrame](0.01)
	for _, f := range frames(3) {
		seq.AddFrame(f)
	}
	seq.SetDefaultIndex(1)
	seq.Start()
	require.Equal(t, 1, seq.Index())

	seq.Update(0.01)
	seq.Update(0.01)
	assert.Equal(t, 1, seq.Index())
	assert.True(t, seq.IsCompleted())
}

func TestDefaultIndexBeforeFramesIsRejected(t *testing.T) {
	logs := observeWarnings(t)
	seq := NewSequence[ImageFrame](0.01)

	seq.SetDefaultIndex(3)
	for _, f := range frames(2) {
		seq.AddFrame(f)
	}
	a := NewAnimation(seq)
	a.Start()
	a.Update(0.01)

	assert.Equal(t, 1, logs.FilterMessage("Default frame index out of range").Len())
	assert.Equal(t, 1, seq.Index())
	assert.True(t, seq.Current().Valid())
}

func TestDefaultIndexPastLastFrameIsRejected(t *testing.T) {
	logs := observeWarnings(t)
	seq := NewSequence[ImageFrame](0.01)
	for _, f := range frames(2) {
		seq.AddFrame(f)
	}

	seq.SetDefaultIndex(2)
	seq.Start()

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, 0, seq.Index())
}

func TestAddInvalidFrameIsRejected(t *testing.T) {
	tex := rendertest.NewImage(10, 10)
	tests := []struct {
		name  string
		frame ImageFrame
	}{
		{"zero height", ImageFrame{Texture: tex, Rect: image.Rect(0, 0, 10, 0)}},
		{"nil texture", ImageFrame{Rect: image.Rect(0, 0, 10, 10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeWarnings(t)
			seq := NewSequence[ImageFrame](0.01)

			seq.AddFrame(tt.frame)

			assert.Equal(t, 1, logs.Len())
			assert.Zero(t, seq.Len())
		})
	}
}

func TestAddFrameWhileRunningIsRejected(t *testing.T) {
	seq := startedSequence(2)
	logs := observeWarnings(t)

	seq.AddFrame(frames(1)[0])

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Can't add frame during animation", logs.All()[0].Message)
	assert.Equal(t, 2, seq.Len())
}

func TestStartEmptySequenceWarns(t *testing.T) {
	logs := observeWarnings(t)
	seq := NewSequence[ColliderFrame](0.01)

	seq.Start()

	assert.Equal(t, 1, logs.FilterMessage("Can't start animation, no frames").Len())
	assert.False(t, seq.IsRunning())
	assert.Equal(t, ColliderFrame{}, seq.Current())
}
