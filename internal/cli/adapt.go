package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tristim/pkg/colour"
	"github.com/jmylchreest/tristim/pkg/illuminant"
)

type adaptOptions struct {
	from   illuminant.Illuminant
	to     illuminant.Illuminant
	format string
}

func newAdaptCmd(a *app) *cobra.Command {
	opts := &adaptOptions{}

	cmd := &cobra.Command{
		Use:   "adapt <x> <y> <z>",
		Short: "Adapt an XYZ triple between illuminants (Bradford)",
		Long: `Adapt a CIE XYZ triple seen under one illuminant to the corresponding
colour under another, using the Bradford chromatic adaptation transform.

The result is printed as XYZ together with its sRGB encoding.

Examples:
  # D65 white seen under D50
  tristim adapt 0.95047 1 1.08883 --from D65 --to D50

  # Only the sRGB hex
  tristim adapt 0.2 0.3 0.4 --from A --to D65 -f hex`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdapt(cmd, args, opts)
		},
	}

	cmd.Flags().Var(newIlluminantFlag(&opts.from, illuminant.D65), "from", "illuminant the triple was measured under")
	cmd.Flags().Var(newIlluminantFlag(&opts.to, illuminant.D50), "to", "illuminant to adapt to")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatAll, "output format (all, xyz, hex, json)")

	return cmd
}

func (a *app) runAdapt(cmd *cobra.Command, args []string, opts *adaptOptions) error {
	var v [3]float64
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid tristimulus value %q: %w", arg, err)
		}
		v[i] = f
	}

	src := colour.XYZ{X: v[0], Y: v[1], Z: v[2], Illuminant: opts.from}
	dst := src.Adapt(opts.to)
	a.logger.Debug("adapted", "from", src, "to", dst)

	out := cmd.OutOrStdout()
	switch opts.format {
	case formatXYZ:
		fmt.Fprintln(out, dst)
		return nil
	case formatHex:
		fmt.Fprintln(out, colour.Convert[colour.RGB](dst).Hex())
		return nil
	case formatJSON:
		s, err := formatColour(dst, opts.to, formatJSON)
		if err != nil {
			return err
		}
		fmt.Fprint(out, s)
		return nil
	case formatAll:
		rgb := colour.Convert[colour.RGB](dst)
		table := NewTable([]string{"", "Value"})
		table.AddRow([]string{"source", src.String()})
		table.AddRow([]string{"adapted", dst.String()})
		table.AddRow([]string{"srgb", rgb.Hex() + " " + colour.Swatch(rgb, 2)})
		fmt.Fprint(out, table.Render())
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: all, xyz, hex, json)", opts.format)
	}
}
