package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 2, 2}, true},
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
		{"touching edges", Rect{0, 0, 10, 10}, Rect{10, 0, 5, 5}, false},
		{"partial overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"empty rect", Rect{0, 0, 10, 10}, Rect{2, 2, 0, 5}, false},
		{"overlap on one axis only", Rect{0, 0, 10, 10}, Rect{2, 12, 2, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 100, 50}

	assert.True(t, r.Contains(Vec{0, 0}))
	assert.True(t, r.Contains(Vec{99, 49}))
	assert.False(t, r.Contains(Vec{100, 10}))
	assert.False(t, r.Contains(Vec{-1, 10}))
}

func TestBounds(t *testing.T) {
	b := Bounds(Vec{3, 4}, Vec{-1, 10}, Vec{5, 0})
	assert.Equal(t, Rect{X: -1, Y: 0, W: 6, H: 10}, b)
	assert.Equal(t, Rect{}, Bounds())
}

func TestVecRotate(t *testing.T) {
	v := Vec{1, 0}.Rotate(90)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 1, v.Y, 1e-9)
}
