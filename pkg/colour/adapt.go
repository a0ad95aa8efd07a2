package colour

import "github.com/jmylchreest/tristim/pkg/illuminant"

// bradford maps XYZ into the Bradford cone response space.
var bradford = [3][3]float64{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

// bradfordInv is the precomputed inverse of bradford.
var bradfordInv = [3][3]float64{
	{0.986993, -0.147054, 0.159963},
	{0.432305, 0.518360, 0.049291},
	{-0.008529, 0.040043, 0.968487},
}

// mulVec returns m·v.
func mulVec(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// AdaptTriple re-expresses the XYZ triple v, seen under from, as the
// corresponding triple under to using the Bradford transform with full
// adaptation.
//
// If from == to, v is returned unchanged. Since every white point is
// normalised to Y = 1 the usual luminance factor cancels and the transform
// is linear.
func AdaptTriple(v [3]float64, from, to illuminant.Illuminant) [3]float64 {
	if from == to {
		return v
	}

	cone := mulVec(bradford, v)
	src := mulVec(bradford, from.WhitePoint())
	dst := mulVec(bradford, to.WhitePoint())

	for i := range cone {
		cone[i] *= dst[i] / src[i]
	}

	return mulVec(bradfordInv, cone)
}
