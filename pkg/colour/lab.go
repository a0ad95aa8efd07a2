package colour

import (
	"fmt"
	"math"

	"github.com/jmylchreest/tristim/pkg/coord"
	"github.com/jmylchreest/tristim/pkg/illuminant"
)

// LabWhite is the reference white of Lab.
const LabWhite = illuminant.D50

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// Lab is a CIE 1976 L*a*b* colour relative to LabWhite.
//
// L is in [0, 100]; A and B are unbounded but usually within ±128.
type Lab struct {
	L, A, B float64
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

// ToXYZ converts c to XYZ under il.
func (c Lab) ToXYZ(il illuminant.Illuminant) XYZ {
	wp := LabWhite.WhitePoint()
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200
	return XYZ{
		X:          labFInv(fx) * wp[0],
		Y:          labFInv(fy) * wp[1],
		Z:          labFInv(fz) * wp[2],
		Illuminant: LabWhite,
	}.Adapt(il)
}

// FromXYZ converts x to Lab, adapting it to LabWhite first.
func (Lab) FromXYZ(x XYZ) Lab {
	x = x.Adapt(LabWhite)
	wp := LabWhite.WhitePoint()
	fx := labF(x.X / wp[0])
	fy := labF(x.Y / wp[1])
	fz := labF(x.Z / wp[2])
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// Coord returns (L, a, b) as a coordinate.
func (c Lab) Coord() coord.Coord {
	return coord.Coord{X: c.L, Y: c.A, Z: c.B}
}

// FromCoord builds a Lab from (L, a, b).
func (Lab) FromCoord(p coord.Coord) Lab {
	return Lab{L: p.X, A: p.Y, B: p.Z}
}

// Mix returns the midpoint of c and o in L*a*b*.
func (c Lab) Mix(o Lab) Lab {
	return MixCoords(c, o)
}

// String formats c as "lab(L, a, b)".
func (c Lab) String() string {
	return fmt.Sprintf("lab(%.3f, %.3f, %.3f)", c.L, c.A, c.B)
}
