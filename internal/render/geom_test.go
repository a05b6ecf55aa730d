package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoMIdentity(t *testing.T) {
	var g GeoM
	x, y := g.Apply(3, 4)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestGeoMScaleRotateTranslate(t *testing.T) {
	var g GeoM
	g.Scale(2, 2)
	g.Rotate(math.Pi / 2)
	g.Translate(10, 0)

	x, y := g.Apply(1, 0)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 2, y, 1e-9)

	g.Reset()
	assert.Equal(t, 1.0, g.Element(0, 0))
	assert.Equal(t, 0.0, g.Element(0, 2))
}
