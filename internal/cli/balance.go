package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tristim/internal/image"
	"github.com/jmylchreest/tristim/pkg/illuminant"
)

type balanceOptions struct {
	from illuminant.Illuminant
	to   illuminant.Illuminant
}

func newBalanceCmd(a *app) *cobra.Command {
	opts := &balanceOptions{}

	cmd := &cobra.Command{
		Use:   "balance <input> <output.png>",
		Short: "White balance an image from one illuminant to another",
		Long: `Re-render an sRGB image shot under one illuminant as it would appear
under another, adapting every pixel with the Bradford transform.

Supported input formats: JPEG, PNG, GIF, WebP. Output is always PNG.

Examples:
  # Correct a photo taken under tungsten light
  tristim balance --from A --to D65 kitchen.jpg kitchen-daylight.png

  # Simulate fluorescent lighting
  tristim balance --from D65 --to F11 chart.png chart-f11.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBalance(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().Var(newIlluminantFlag(&opts.from, illuminant.A), "from", "illuminant the image was lit by")
	cmd.Flags().Var(newIlluminantFlag(&opts.to, illuminant.D65), "to", "illuminant to render the image under")

	return cmd
}

func (a *app) runBalance(cmd *cobra.Command, in, out string, opts *balanceOptions) error {
	start := time.Now()

	img, err := image.NewFileLoader().Load(in)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	a.logger.Debug("loaded image", "path", in, "bounds", img.Bounds())

	balanced, err := image.Balance(cmd.Context(), img, image.BalanceOptions{
		From:   opts.from,
		To:     opts.to,
		Logger: a.logger.Named("balance"),
	})
	if err != nil {
		return err
	}

	if err := image.Save(out, balanced); err != nil {
		return err
	}

	a.logger.Info("image balanced", "from", opts.from, "to", opts.to,
		"output", out, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
