package render

import "math"

// GeoM is a 2x3 affine matrix laid out as
//
//	| a  b  tx |
//	| c  d  ty |
//
// The zero value is the identity, so a and d are stored minus one.
type GeoM struct {
	a1, b, c, d1, tx, ty float64
}

// Reset resets the matrix to identity.
func (g *GeoM) Reset() {
	*g = GeoM{}
}

// Translate shifts the image by (tx, ty).
func (g *GeoM) Translate(tx, ty float64) {
	g.tx += tx
	g.ty += ty
}

// Scale scales the image by (sx, sy).
func (g *GeoM) Scale(sx, sy float64) {
	a := (g.a1 + 1) * sx
	b := g.b * sx
	tx := g.tx * sx
	c := g.c * sy
	d := (g.d1 + 1) * sy
	ty := g.ty * sy
	g.a1, g.b, g.tx = a-1, b, tx
	g.c, g.d1, g.ty = c, d-1, ty
}

// Rotate rotates the image by the given angle in radians.
func (g *GeoM) Rotate(theta float64) {
	if theta == 0 {
		return
	}
	sin, cos := math.Sincos(theta)
	a := cos*(g.a1+1) - sin*g.c
	b := cos*g.b - sin*(g.d1+1)
	tx := cos*g.tx - sin*g.ty
	c := sin*(g.a1+1) + cos*g.c
	d := sin*g.b + cos*(g.d1+1)
	ty := sin*g.tx + cos*g.ty
	g.a1, g.b, g.tx = a-1, b, tx
	g.c, g.d1, g.ty = c, d-1, ty
}

// Concat multiplies a geometry matrix with the other geometry matrix.
// This is the same as applying g first and then other.
func (g *GeoM) Concat(other GeoM) {
	a0, b0, c0, d0 := g.a1+1, g.b, g.c, g.d1+1
	a1, b1, c1, d1 := other.a1+1, other.b, other.c, other.d1+1
	tx, ty := other.Apply(g.tx, g.ty)

	g.a1 = a1*a0 + b1*c0 - 1
	g.b = a1*b0 + b1*d0
	g.c = c1*a0 + d1*c0
	g.d1 = c1*b0 + d1*d0 - 1
	g.tx, g.ty = tx, ty
}

// Element returns the value at row i, column j.
func (g *GeoM) Element(i, j int) float64 {
	switch {
	case i == 0 && j == 0:
		return g.a1 + 1
	case i == 0 && j == 1:
		return g.b
	case i == 0 && j == 2:
		return g.tx
	case i == 1 && j == 0:
		return g.c
	case i == 1 && j == 1:
		return g.d1 + 1
	case i == 1 && j == 2:
		return g.ty
	default:
		return 0
	}
}

// Apply transforms the point (x, y).
func (g *GeoM) Apply(x, y float64) (float64, float64) {
	return (g.a1+1)*x + g.b*y + g.tx, g.c*x + (g.d1+1)*y + g.ty
}
