package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tristim/pkg/colour"
	"github.com/jmylchreest/tristim/pkg/illuminant"
)

// Output formats understood by convert, adapt and mix.
const (
	formatAll  = "all"
	formatHex  = "hex"
	formatRGB  = "rgb"
	formatXYZ  = "xyz"
	formatLab  = "lab"
	formatJSON = "json"
)

var validFormats = []string{formatAll, formatHex, formatRGB, formatXYZ, formatLab, formatJSON}

// convertOptions holds the convert command flags.
type convertOptions struct {
	format  string
	preview bool
}

func newConvertCmd(a *app) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Convert a colour between sRGB, XYZ and CIELAB",
		Long: `Convert a colour to every supported representation.

XYZ output is expressed under the working illuminant (--illuminant).

Examples:
  # Show a colour in every representation
  tristim convert '#fe1737'

  # XYZ under D50
  tristim convert -i D50 -f xyz rebeccapurple

  # JSON for scripting
  tristim convert -f json 'rgb(254, 23, 55)'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatAll,
		"output format ("+strings.Join(validFormats, ", ")+")")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show a colour swatch")

	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, input string, opts *convertOptions) error {
	rgb, err := colour.Parse(input)
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}
	a.logger.Debug("parsed colour", "input", input, "rgb", rgb.Hex())

	out, err := formatColour(rgb, a.illuminant, opts.format)
	if err != nil {
		return err
	}
	if opts.preview {
		out = colour.Swatch(rgb, a.cfg.PreviewWidth) + "\n" + out
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// colourJSON is the JSON representation of a colour.
type colourJSON struct {
	Hex string     `json:"hex"`
	RGB colour.RGB `json:"rgb"`
	XYZ xyzJSON    `json:"xyz"`
	Lab labJSON    `json:"lab"`
}

type xyzJSON struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Illuminant string  `json:"illuminant"`
}

type labJSON struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// formatColour renders c in the requested format, reporting XYZ under il.
func formatColour(c colour.Colour, il illuminant.Illuminant, format string) (string, error) {
	rgb := colour.Convert[colour.RGB](c)
	xyz := c.ToXYZ(il)
	lab := colour.Convert[colour.Lab](c)

	switch format {
	case formatHex:
		return rgb.Hex() + "\n", nil
	case formatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)\n", rgb.R, rgb.G, rgb.B), nil
	case formatXYZ:
		return xyz.String() + "\n", nil
	case formatLab:
		return lab.String() + "\n", nil
	case formatAll:
		table := NewTable([]string{"Space", "Value"})
		table.AddRow([]string{"hex", rgb.Hex()})
		table.AddRow([]string{"rgb", fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)})
		table.AddRow([]string{"xyz", xyz.String()})
		table.AddRow([]string{"lab", lab.String()})
		return table.Render(), nil
	case formatJSON:
		data, err := json.MarshalIndent(colourJSON{
			Hex: rgb.Hex(),
			RGB: rgb,
			XYZ: xyzJSON{X: xyz.X, Y: xyz.Y, Z: xyz.Z, Illuminant: xyz.Illuminant.String()},
			Lab: labJSON{L: lab.L, A: lab.A, B: lab.B},
		}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(validFormats, ", "))
	}
}
