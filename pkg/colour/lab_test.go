package colour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jmylchreest/tristim/pkg/illuminant"
)

func TestLabFromRGB(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want Lab
	}{
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: Lab{L: 100, A: 0, B: 0}},
		{name: "black", rgb: RGB{}, want: Lab{}},
		{name: "red", rgb: RGB{R: 255}, want: Lab{L: 54.284, A: 80.828, B: 69.904}},
		{name: "blue", rgb: RGB{B: 255}, want: Lab{L: 29.573, A: 68.309, B: -112.033}},
	}

	// The sRGB matrix is only given to four places, so white lands a little
	// off the neutral axis.
	opt := cmpopts.EquateApprox(0, 0.02)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert[Lab](tt.rgb)
			if diff := cmp.Diff(tt.want, got, opt); diff != "" {
				t.Errorf("Convert[Lab](%v) mismatch (-want +got):\n%s", tt.rgb, diff)
			}
		})
	}
}

func TestLabRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				if got := Convert[RGB](Convert[Lab](c)); got != c {
					t.Fatalf("%v -> Lab -> %v", c, got)
				}
			}
		}
	}
}

func TestLabToXYZAdapts(t *testing.T) {
	white := Lab{L: 100}
	for _, il := range illuminant.All() {
		got := white.ToXYZ(il)
		if got.Illuminant != il {
			t.Errorf("ToXYZ(%s).Illuminant = %s", il, got.Illuminant)
		}
		if !got.ApproxEqual(WhitePoint(il)) {
			t.Errorf("Lab white under %s = %v, want %v", il, got, WhitePoint(il))
		}
	}
}

func TestLabDarkBranch(t *testing.T) {
	// L below κε uses the linear segment of f⁻¹.
	c := Lab{L: 5, A: 1, B: -1}
	got := (Lab{}).FromXYZ(c.ToXYZ(LabWhite))
	if diff := cmp.Diff(c, got, approx); diff != "" {
		t.Errorf("dark round trip mismatch (-want +got):\n%s", diff)
	}
	if y := c.ToXYZ(LabWhite).Y; math.Abs(y-5/labKappa) > 1e-12 {
		t.Errorf("Y = %g, want %g", y, 5/labKappa)
	}
}

func TestMixLab(t *testing.T) {
	a := Lab{L: 20, A: -10, B: 40}
	b := Lab{L: 80, A: 30, B: -20}
	want := Lab{L: 50, A: 10, B: 10}

	if got := a.Mix(b); got != want {
		t.Errorf("a.Mix(b) = %v, want %v", got, want)
	}
	if got := Mix(b, a); got != want {
		t.Errorf("b.Mix(a) = %v, want %v", got, want)
	}
	if got := MixCoords(a, b); got != want {
		t.Errorf("MixCoords(a, b) = %v, want %v", got, want)
	}
}

func TestLabCoordRoundTrip(t *testing.T) {
	c := Lab{L: 42, A: -3.5, B: 17.25}
	if got := (Lab{}).FromCoord(c.Coord()); got != c {
		t.Errorf("FromCoord(Coord()) = %v, want %v", got, c)
	}
}
