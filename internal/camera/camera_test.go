package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/forestadventure/internal/core/geom"
)

func TestCameraCentersOnTarget(t *testing.T) {
	c := New(100, 80)
	c.SetBounds(geom.Rect{W: 1000, H: 1000})
	target := geom.Vec{X: 500, Y: 400}
	c.Track(func() geom.Vec { return target })

	c.Update()
	assert.Equal(t, geom.Vec{X: 450, Y: 360}, c.Position())

	target = geom.Vec{X: 600, Y: 400}
	c.Update()
	assert.Equal(t, geom.Vec{X: 550, Y: 360}, c.Position())
}

func TestCameraClampsToBounds(t *testing.T) {
	c := New(100, 80)
	c.SetBounds(geom.Rect{W: 1000, H: 1000})

	tests := []struct {
		name   string
		target geom.Vec
		want   geom.Vec
	}{
		{"top left", geom.Vec{X: 10, Y: 10}, geom.Vec{X: 0, Y: 0}},
		{"bottom right", geom.Vec{X: 990, Y: 990}, geom.Vec{X: 900, Y: 920}},
		{"inside", geom.Vec{X: 100, Y: 100}, geom.Vec{X: 50, Y: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Track(func() geom.Vec { return tt.target })
			c.Update()
			assert.Equal(t, tt.want, c.Position())
		})
	}
}

func TestCameraCentersSmallLevel(t *testing.T) {
	c := New(100, 80)
	c.SetBounds(geom.Rect{W: 60, H: 80})
	c.Track(func() geom.Vec { return geom.Vec{X: 50, Y: 50} })

	c.Update()

	assert.Equal(t, geom.Vec{X: -20, Y: 0}, c.Position())
}

func TestCameraWithoutTargetStays(t *testing.T) {
	c := New(100, 80)
	c.Update()
	assert.Equal(t, geom.Vec{}, c.Position())
}
