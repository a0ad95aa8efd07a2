package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for truecolour terminals.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
	swatchGlyph  = "■"
)

// DisableColourOutput forces the renderers to emit plain text.
var DisableColourOutput = false

// SupportsANSIColours reports whether f looks like a terminal that accepts
// colour escapes. NO_COLOR disables colour regardless of the terminal.
func SupportsANSIColours(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

func fg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func bg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// ColourString returns text in c's colour, or text itself when colour
// output is disabled.
func ColourString(c Colour, text string) string {
	if DisableColourOutput {
		return text
	}
	return fg(Convert[RGB](c)) + text + ansiReset
}

// Swatch returns a solid block of c, width cells wide. Foreground and
// background are both set so the block renders even on terminals that draw
// the glyph narrower than a cell.
func Swatch(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if DisableColourOutput {
		return strings.Repeat(" ", width)
	}
	rgb := Convert[RGB](c)
	return bg(rgb) + fg(rgb) + strings.Repeat(swatchGlyph, width) + ansiReset
}

// FormatWithLabel formats c as a swatch followed by a label and its hex
// code.
func FormatWithLabel(c Colour, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", Swatch(c, width), label, Convert[RGB](c).Hex())
}
