// Package colour provides colour representations, conversion between them
// through CIE 1931 XYZ, chromatic adaptation, and mixing.
//
// XYZ is the hub of the conversion graph: every representation only knows
// how to convert itself to and from XYZ, and Convert derives the conversion
// between any two of them.
package colour

import "github.com/jmylchreest/tristim/pkg/illuminant"

// HubIlluminant is the illuminant Convert routes colours through. The
// choice does not affect results beyond floating point error and may change.
const HubIlluminant = illuminant.D50

// Colour is any colour representation that can be expressed in XYZ.
type Colour interface {
	// ToXYZ converts the colour to XYZ under the given illuminant.
	ToXYZ(il illuminant.Illuminant) XYZ
}

// Space is a Colour representation that can also be constructed from XYZ.
//
// FromXYZ ignores its receiver, so the zero value of T can be used to
// construct a T.
type Space[T any] interface {
	Colour
	FromXYZ(x XYZ) T
}

// Convert converts c to the representation T.
//
//	rgb := colour.Convert[colour.RGB](lab)
func Convert[T Space[T]](c Colour) T {
	return ConvertVia[T](c, HubIlluminant)
}

// ConvertVia converts c to T, routing through hub instead of HubIlluminant.
func ConvertVia[T Space[T]](c Colour, hub illuminant.Illuminant) T {
	var zero T
	return zero.FromXYZ(c.ToXYZ(hub))
}
