package colour

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/tristim/pkg/illuminant"
)

// The hub illuminant is an internal detail: routing through any other
// registered illuminant must give the same answer.
func TestConvertIndependentOfHub(t *testing.T) {
	fixed := XYZ{X: 0.41874, Y: 0.21967, Z: 0.05649, Illuminant: illuminant.D65}
	for _, hub := range illuminant.All() {
		if got := ConvertVia[RGB](fixed, hub); got != (RGB{R: 254, G: 23, B: 55}) {
			t.Errorf("via %s: got %v, want #FE1737", hub, got)
		}
	}

	for r := 0; r < 256; r += 51 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 51 {
				c := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				want := Convert[Lab](c)
				for _, hub := range illuminant.All() {
					got := ConvertVia[Lab](c, hub)
					if diff := cmp.Diff(want, got, approx); diff != "" {
						t.Errorf("%v via %s (-D50 +hub):\n%s", c, hub, diff)
					}
					if back := ConvertVia[RGB](got, hub); back != c {
						t.Errorf("%v -> Lab -> RGB via %s = %v", c, hub, back)
					}
				}
			}
		}
	}
}

func TestConvertUsesHub(t *testing.T) {
	c := RGB{R: 45, G: 28, B: 156}
	got := Convert[XYZ](c)
	if got.Illuminant != HubIlluminant {
		t.Errorf("Convert[XYZ]().Illuminant = %s, want %s", got.Illuminant, HubIlluminant)
	}
	if !got.VisuallyEqual(c.ToXYZ(illuminant.D65)) {
		t.Errorf("Convert[XYZ]() = %v does not match ToXYZ(D65)", got)
	}
}
