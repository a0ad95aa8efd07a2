package image

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tristim/pkg/colour"
	"github.com/jmylchreest/tristim/pkg/illuminant"
)

// BalanceOptions configures Balance.
type BalanceOptions struct {
	// From is the illuminant the scene was lit by.
	From illuminant.Illuminant
	// To is the illuminant the result should look as if it were lit by.
	To illuminant.Illuminant
	// Logger receives progress messages. Nil discards them.
	Logger hclog.Logger
}

// Balance re-renders an sRGB image whose scene white is opts.From as it
// would appear under opts.To.
//
// Each pixel's XYZ is read as seen under From, adapted to To, and encoded
// back to sRGB. Alpha is preserved. Out of gamut results are clipped.
func Balance(ctx context.Context, img image.Image, opts BalanceOptions) (*image.NRGBA, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if !opts.From.Valid() || !opts.To.Valid() {
		return nil, fmt.Errorf("invalid illuminant pair %s -> %s", opts.From, opts.To)
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	logger.Debug("balancing image", "from", opts.From, "to", opts.To,
		"width", bounds.Dx(), "height", bounds.Dy())

	// Memoised per distinct colour.
	cache := make(map[colour.RGB]colour.RGB)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("balance cancelled at row %d: %w", y-bounds.Min.Y, err)
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			in := colour.RGB{R: px.R, G: px.G, B: px.B}

			res, ok := cache[in]
			if !ok {
				res = balancePixel(in, opts.From, opts.To)
				cache[in] = res
			}
			out.SetNRGBA(x, y, color.NRGBA{R: res.R, G: res.G, B: res.B, A: px.A})
		}
	}

	logger.Debug("balance complete", "distinct_colours", len(cache))
	return out, nil
}

// balancePixel adapts one pixel. The XYZ numbers are computed in the sRGB
// frame, relabelled as from, adapted, and relabelled back so that the
// display white stands for to.
func balancePixel(c colour.RGB, from, to illuminant.Illuminant) colour.RGB {
	xyz := c.ToXYZ(illuminant.D65)
	xyz.Illuminant = from
	xyz = xyz.Adapt(to)
	xyz.Illuminant = illuminant.D65
	return colour.RGB{}.FromXYZ(xyz)
}
