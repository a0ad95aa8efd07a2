package colour

import (
	"os"
	"strings"
	"testing"

	"github.com/jmylchreest/tristim/pkg/illuminant"
)

func TestColourString(t *testing.T) {
	defer func(old bool) { DisableColourOutput = old }(DisableColourOutput)

	DisableColourOutput = false
	c := XYZ{X: 0.41874, Y: 0.21967, Z: 0.05649, Illuminant: illuminant.D65}
	got := ColourString(c, "hello")
	want := "\033[38;2;254;23;55mhello\033[0m"
	if got != want {
		t.Errorf("ColourString() = %q, want %q", got, want)
	}

	DisableColourOutput = true
	if got := ColourString(c, "hello"); got != "hello" {
		t.Errorf("ColourString() with colour disabled = %q", got)
	}
}

func TestSwatch(t *testing.T) {
	defer func(old bool) { DisableColourOutput = old }(DisableColourOutput)
	DisableColourOutput = false

	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "explicit width", width: 3, want: 3},
		{name: "default width", width: 0, want: defaultWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Swatch(RGB{R: 1, G: 2, B: 3}, tt.width)
			if !strings.HasPrefix(got, "\033[48;2;1;2;3m\033[38;2;1;2;3m") {
				t.Errorf("Swatch() = %q, missing colour prefix", got)
			}
			if n := strings.Count(got, swatchGlyph); n != tt.want {
				t.Errorf("Swatch() has %d glyphs, want %d", n, tt.want)
			}
			if !strings.HasSuffix(got, ansiReset) {
				t.Errorf("Swatch() = %q, missing reset", got)
			}
		})
	}
}

func TestFormatWithLabel(t *testing.T) {
	defer func(old bool) { DisableColourOutput = old }(DisableColourOutput)
	DisableColourOutput = true

	got := FormatWithLabel(RGB{R: 0xAB, G: 0xCD, B: 0xEF}, "accent", 2)
	want := "    accent               #ABCDEF"
	if got != want {
		t.Errorf("FormatWithLabel() = %q, want %q", got, want)
	}
}

func TestSupportsANSIColours(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if SupportsANSIColours(os.Stdout) {
		t.Error("SupportsANSIColours() = true with NO_COLOR set")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	os.Unsetenv("NO_COLOR")
	if SupportsANSIColours(f) {
		t.Error("SupportsANSIColours() = true for a regular file")
	}
	if SupportsANSIColours(nil) {
		t.Error("SupportsANSIColours(nil) = true")
	}
}
