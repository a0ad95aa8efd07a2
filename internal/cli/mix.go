package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tristim/pkg/colour"
	"github.com/jmylchreest/tristim/pkg/illuminant"
)

// Spaces understood by the mix command.
const (
	spaceRGB    = "rgb"
	spaceLinear = "linear"
	spaceXYZ    = "xyz"
	spaceLab    = "lab"
)

var mixSpaces = []string{spaceRGB, spaceLinear, spaceXYZ, spaceLab}

type mixOptions struct {
	space   string
	format  string
	preview bool
}

func newMixCmd(a *app) *cobra.Command {
	opts := &mixOptions{}

	cmd := &cobra.Command{
		Use:   "mix <colour> <colour>",
		Short: "Mix two colours at their midpoint",
		Long: `Mix two colours by taking the midpoint in the chosen space.

Spaces:
  rgb     average of encoded sRGB channels (not gamma aware)
  linear  average of linear light sRGB channels
  xyz     midpoint in CIE XYZ under the working illuminant
  lab     midpoint in CIELAB

Examples:
  tristim mix red blue
  tristim mix '#000' '#fff' --space linear --preview`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMix(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.space, "space", "s", spaceRGB, "space to mix in ("+strings.Join(mixSpaces, ", ")+")")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHex,
		"output format ("+strings.Join(validFormats, ", ")+")")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show swatches of the inputs and the result")

	return cmd
}

func (a *app) runMix(cmd *cobra.Command, args []string, opts *mixOptions) error {
	x, err := colour.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid first colour: %w", err)
	}
	y, err := colour.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid second colour: %w", err)
	}

	mixed, err := mixIn(opts.space, x, y, a.illuminant)
	if err != nil {
		return err
	}
	a.logger.Debug("mixed", "space", opts.space, "a", x.Hex(), "b", y.Hex(), "result", mixed)

	out, err := formatColour(mixed, a.illuminant, opts.format)
	if err != nil {
		return err
	}
	if opts.preview {
		w := a.cfg.PreviewWidth
		out = colour.Swatch(x, w) + " + " + colour.Swatch(y, w) + " = " + colour.Swatch(mixed, w) + "\n" + out
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// mixIn returns the midpoint of x and y computed in the named space.
func mixIn(space string, x, y colour.RGB, il illuminant.Illuminant) (colour.Colour, error) {
	switch space {
	case spaceRGB:
		return colour.Mix(x, y), nil
	case spaceLinear:
		return x.LinearMix(y), nil
	case spaceXYZ:
		return colour.Mix(x.ToXYZ(il), y.ToXYZ(il)), nil
	case spaceLab:
		return colour.Mix(colour.Convert[colour.Lab](x), colour.Convert[colour.Lab](y)), nil
	default:
		return nil, fmt.Errorf("unsupported space: %s (supported: %s)", space, strings.Join(mixSpaces, ", "))
	}
}
