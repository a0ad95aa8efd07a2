package colour

import "github.com/jmylchreest/tristim/pkg/coord"

// Mixer is a colour that can be mixed with another colour of the same type.
//
// Mixing takes the midpoint of two colours in some projection into three
// dimensional space. The result depends on the projection, so a.Mix(b) in
// one representation generally differs from the mix of the converted
// colours in another. Only colours of the same type can be mixed, which
// keeps a.Mix(b) and b.Mix(a) consistent.
//
// Mixing is additive, like light on a screen: yellow and blue mix to grey,
// not green.
type Mixer[T any] interface {
	Mix(o T) T
}

// Embedder is a colour that maps losslessly to and from a coord.Coord.
type Embedder[T any] interface {
	Coord() coord.Coord
	FromCoord(p coord.Coord) T
}

// Mix returns the midpoint of a and b.
func Mix[T Mixer[T]](a, b T) T {
	return a.Mix(b)
}

// MixCoords is the default mix for types that embed into coord.Coord:
// project both colours, average them, and map the midpoint back.
func MixCoords[T Embedder[T]](a, b T) T {
	return a.FromCoord(a.Coord().Midpoint(b.Coord()))
}
