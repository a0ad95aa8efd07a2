package colour

import (
	"fmt"
	"math"

	"github.com/jmylchreest/tristim/pkg/illuminant"
)

// RGB is an 8-bit per channel, gamma encoded sRGB colour.
//
// RGB carries no illuminant: sRGB is defined against D65 and conversions to
// and from XYZ adapt to and from D65 as needed.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// sRGB primaries, linear RGB to XYZ under D65.
var srgbToXYZ = [3][3]float64{
	{0.4124, 0.3576, 0.1805},
	{0.2126, 0.7152, 0.0722},
	{0.0193, 0.1192, 0.9505},
}

// xyzToSRGB is the inverse of srgbToXYZ.
var xyzToSRGB = [3][3]float64{
	{3.2406, -1.5372, -0.4986},
	{-0.9689, 1.8758, 0.0415},
	{0.0557, -0.2040, 1.0570},
}

const (
	// decodeThreshold is the encoded value below which the sRGB curve is linear.
	decodeThreshold = 0.04045
	// encodeThreshold is decodeThreshold in linear light.
	encodeThreshold = 0.0031308
)

// FromTuple builds an RGB from an (r, g, b) triple.
func FromTuple(t [3]uint8) RGB {
	return RGB{R: t[0], G: t[1], B: t[2]}
}

// Tuple returns the channels as an (r, g, b) triple.
func (c RGB) Tuple() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Hex returns the colour as an upper-case hex string, e.g. "#1A2B3C".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns Hex.
func (c RGB) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color. RGB is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Linearize removes the sRGB transfer curve from an encoded value in [0, 1].
func Linearize(v float64) float64 {
	if v <= decodeThreshold {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// EncodeGamma applies the sRGB transfer curve to a linear value in [0, 1].
func EncodeGamma(v float64) float64 {
	if v <= encodeThreshold {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// linear returns the channels in linear light.
func (c RGB) linear() [3]float64 {
	return [3]float64{
		Linearize(float64(c.R) / 255),
		Linearize(float64(c.G) / 255),
		Linearize(float64(c.B) / 255),
	}
}

// fromLinear encodes linear channels, clamping anything outside the sRGB
// gamut.
func fromLinear(v [3]float64) RGB {
	return RGB{
		R: quantize(EncodeGamma(v[0])),
		G: quantize(EncodeGamma(v[1])),
		B: quantize(EncodeGamma(v[2])),
	}
}

// quantize clamps v to [0, 1] and rounds it to the nearest 8-bit value.
func quantize(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(v * 255))
}

// ToXYZ converts c to XYZ under il.
func (c RGB) ToXYZ(il illuminant.Illuminant) XYZ {
	v := mulVec(srgbToXYZ, c.linear())
	return XYZ{X: v[0], Y: v[1], Z: v[2], Illuminant: illuminant.D65}.Adapt(il)
}

// FromXYZ converts x to sRGB. Colours outside the sRGB gamut are clipped
// channel by channel; no error is reported.
func (RGB) FromXYZ(x XYZ) RGB {
	x = x.Adapt(illuminant.D65)
	return fromLinear(mulVec(xyzToSRGB, [3]float64{x.X, x.Y, x.Z}))
}

// Mix averages each channel of c and o, rounding down.
//
// This works on the gamma encoded values, so it is not the midpoint in
// linear light. Use LinearMix for that.
func (c RGB) Mix(o RGB) RGB {
	return RGB{
		R: uint8((uint16(c.R) + uint16(o.R)) / 2),
		G: uint8((uint16(c.G) + uint16(o.G)) / 2),
		B: uint8((uint16(c.B) + uint16(o.B)) / 2),
	}
}

// LinearMix returns the midpoint of c and o in linear light, re-encoded.
func (c RGB) LinearMix(o RGB) RGB {
	a, b := c.linear(), o.linear()
	return fromLinear([3]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2})
}
