// Package illuminant provides the registry of CIE standard illuminants and
// their white points.
//
// Every white point is given in CIE 1931 XYZ for the 2° standard observer and
// normalised so that Y = 1. The chromatic adaptation in package colour relies
// on that normalisation.
package illuminant

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned by Parse for names that are not in the registry.
var ErrUnknown = errors.New("unknown illuminant")

// Illuminant identifies a standard lighting condition.
// The zero value is D65, the reference white of sRGB.
type Illuminant int

const (
	// D65 is noon daylight, about 6504 K.
	D65 Illuminant = iota
	// D50 is horizon light, about 5003 K. Used as the profile connection space
	// white in ICC workflows.
	D50
	// D55 is mid-morning/mid-afternoon daylight, about 5503 K.
	D55
	// D75 is north sky daylight, about 7504 K.
	D75
	// A is incandescent tungsten, about 2856 K.
	A
	// B is direct sunlight at noon (obsolete).
	B
	// C is average daylight (obsolete).
	C
	// E is the equal energy illuminant.
	E
	// F2 is cool white fluorescent.
	F2
	// F7 is broadband daylight fluorescent.
	F7
	// F11 is narrow band white fluorescent.
	F11

	count
)

type entry struct {
	name        string
	description string
	white       [3]float64
}

var registry = [count]entry{
	D65: {"D65", "noon daylight, 6504K", [3]float64{0.95047, 1.0, 1.08883}},
	D50: {"D50", "horizon light, 5003K", [3]float64{0.96422, 1.0, 0.82521}},
	D55: {"D55", "mid-morning daylight, 5503K", [3]float64{0.95682, 1.0, 0.92149}},
	D75: {"D75", "north sky daylight, 7504K", [3]float64{0.94972, 1.0, 1.22638}},
	A:   {"A", "incandescent tungsten, 2856K", [3]float64{1.09850, 1.0, 0.35585}},
	B:   {"B", "direct sunlight (obsolete)", [3]float64{0.99072, 1.0, 0.85223}},
	C:   {"C", "average daylight (obsolete)", [3]float64{0.98074, 1.0, 1.18232}},
	E:   {"E", "equal energy", [3]float64{1.0, 1.0, 1.0}},
	F2:  {"F2", "cool white fluorescent", [3]float64{0.99186, 1.0, 0.67393}},
	F7:  {"F7", "broadband daylight fluorescent", [3]float64{0.95041, 1.0, 1.08747}},
	F11: {"F11", "narrow band white fluorescent", [3]float64{1.00962, 1.0, 0.64350}},
}

// listing is the order used when presenting the registry.
var listing = []Illuminant{A, B, C, D50, D55, D65, D75, E, F2, F7, F11}

// All returns every registered illuminant in presentation order.
// The returned slice is a copy and may be modified by the caller.
func All() []Illuminant {
	out := make([]Illuminant, len(listing))
	copy(out, listing)
	return out
}

// Valid reports whether i is a registered illuminant.
func (i Illuminant) Valid() bool {
	return i >= 0 && i < count
}

// WhitePoint returns the XYZ white point of i, normalised so Y = 1.
// It panics if i is not a registered illuminant.
func (i Illuminant) WhitePoint() [3]float64 {
	if !i.Valid() {
		panic(fmt.Sprintf("illuminant: invalid illuminant %d", int(i)))
	}
	return registry[i].white
}

// Description returns a short human-readable description of i.
func (i Illuminant) Description() string {
	if !i.Valid() {
		return ""
	}
	return registry[i].description
}

// String returns the canonical name of i, e.g. "D65".
func (i Illuminant) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Illuminant(%d)", int(i))
	}
	return registry[i].name
}

// Parse looks up an illuminant by name. Matching ignores case and
// surrounding whitespace.
func Parse(name string) (Illuminant, error) {
	want := strings.TrimSpace(name)
	for i := range count {
		if strings.EqualFold(registry[i].name, want) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
}
