package colour

import (
	"fmt"
	"math"

	"github.com/jmylchreest/tristim/pkg/coord"
	"github.com/jmylchreest/tristim/pkg/illuminant"
)

// Tolerance is the per-channel absolute difference below which two XYZ
// triples are considered equal.
const Tolerance = 0.001

// XYZ is a point in the CIE 1931 XYZ colour space.
//
// Coordinates are normalised so that Y = 1 is the white point of
// Illuminant. Values are usually non-negative and at most slightly above 1,
// but neither bound is enforced. The triple is only meaningful relative to
// its illuminant: use Adapt to move it to a different one rather than
// changing the field.
type XYZ struct {
	X, Y, Z    float64
	Illuminant illuminant.Illuminant
}

// WhitePoint returns pure white under il.
func WhitePoint(il illuminant.Illuminant) XYZ {
	wp := il.WhitePoint()
	return XYZ{X: wp[0], Y: wp[1], Z: wp[2], Illuminant: il}
}

// Adapt returns the colour that looks like c when the viewer is adapted
// to target instead of c.Illuminant. Adapting to the colour's own
// illuminant returns c exactly.
func (c XYZ) Adapt(target illuminant.Illuminant) XYZ {
	if c.Illuminant == target {
		return c
	}
	v := AdaptTriple([3]float64{c.X, c.Y, c.Z}, c.Illuminant, target)
	return XYZ{X: v[0], Y: v[1], Z: v[2], Illuminant: target}
}

// ApproxEqual reports whether every coordinate of c and o is within
// Tolerance. Illuminants are not compared.
func (c XYZ) ApproxEqual(o XYZ) bool {
	return math.Abs(c.X-o.X) <= Tolerance &&
		math.Abs(c.Y-o.Y) <= Tolerance &&
		math.Abs(c.Z-o.Z) <= Tolerance
}

// VisuallyEqual reports whether c and o look the same once o has been
// adapted to c's illuminant.
func (c XYZ) VisuallyEqual(o XYZ) bool {
	return c.ApproxEqual(o.Adapt(c.Illuminant))
}

// ToXYZ returns c unchanged. Conversion never adapts implicitly; call Adapt
// for that.
func (c XYZ) ToXYZ(illuminant.Illuminant) XYZ {
	return c
}

// FromXYZ returns x unchanged.
func (XYZ) FromXYZ(x XYZ) XYZ {
	return x
}

// Mix returns the midpoint of c and o under c's illuminant.
//
// XYZ does not embed into coord.Coord because the illuminant would be lost,
// so o is adapted first. a.Mix(b) and b.Mix(a) are visually equal, though
// they carry different illuminants when a and b do.
func (c XYZ) Mix(o XYZ) XYZ {
	o = o.Adapt(c.Illuminant)
	m := coord.Coord{X: c.X, Y: c.Y, Z: c.Z}.Midpoint(coord.Coord{X: o.X, Y: o.Y, Z: o.Z})
	return XYZ{X: m.X, Y: m.Y, Z: m.Z, Illuminant: c.Illuminant}
}

// String formats c as "xyz(x, y, z; illuminant)".
func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%.5f, %.5f, %.5f; %s)", c.X, c.Y, c.Z, c.Illuminant)
}
