package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tristim/pkg/colour"
	"github.com/jmylchreest/tristim/pkg/illuminant"
)

type illuminantJSON struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	WhitePoint  [3]float64 `json:"white_point"`
	SRGB        string     `json:"srgb"`
}

func newIlluminantsCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "illuminants",
		Aliases: []string{"ls"},
		Short:   "List the standard illuminants",
		Long: `List the registered standard illuminants with their XYZ white points.

The sRGB column shows how each white appears on a D65 display without
adaptation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runIlluminants(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}

func (a *app) runIlluminants(cmd *cobra.Command, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	all := illuminant.All()

	if jsonOutput {
		items := make([]illuminantJSON, 0, len(all))
		for _, il := range all {
			items = append(items, illuminantJSON{
				Name:        il.String(),
				Description: il.Description(),
				WhitePoint:  il.WhitePoint(),
				SRGB:        appearance(il).Hex(),
			})
		}
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	table := NewTable([]string{"Name", "X", "Y", "Z", "sRGB", "Description"})
	table.SetColumnMaxWidth(5, 32)
	for _, il := range all {
		w := il.WhitePoint()
		name := il.String()
		if il == a.illuminant {
			name += " *"
		}
		rgb := appearance(il)
		table.AddRow([]string{
			name,
			fmt.Sprintf("%.5f", w[0]),
			fmt.Sprintf("%.5f", w[1]),
			fmt.Sprintf("%.5f", w[2]),
			colour.Swatch(rgb, 2) + " " + rgb.Hex(),
			il.Description(),
		})
	}
	fmt.Fprint(out, table.Render())
	a.logger.Debug("listed illuminants", "count", len(all), "working", a.illuminant)
	return nil
}

// appearance is the sRGB encoding of the white point of il read as
// D65-relative XYZ, i.e. how that light looks to an unadapted display.
func appearance(il illuminant.Illuminant) colour.RGB {
	w := il.WhitePoint()
	return colour.RGB{}.FromXYZ(colour.XYZ{X: w[0], Y: w[1], Z: w[2], Illuminant: illuminant.D65})
}
