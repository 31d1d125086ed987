package mosaic

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/tile-mosaic/internal/imaging"
)

// Mode selects how a tile is reduced to one color.
type Mode string

const (
	// ModeDecay folds pixels into a running value with c = (c + p) / 2,
	// visiting columns left to right and each column top to bottom. Later
	// pixels weigh more; the bottom-right corner dominates. This is the
	// default because existing output depends on it.
	ModeDecay Mode = "decay"

	// ModeMean is the arithmetic mean of every pixel.
	ModeMean Mode = "mean"

	// ModeDominant is the most prominent color cluster of the tile.
	ModeDominant Mode = "dominant"
)

// ErrUnknownMode is returned for a reduction mode that does not exist.
var ErrUnknownMode = errors.New("unknown reduction mode")

// Modes lists the supported reduction modes.
func Modes() []Mode {
	return []Mode{ModeDecay, ModeMean, ModeDominant}
}

// ParseMode converts a user supplied name into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// AverageColor computes the representative color of img. Channel values are
// truncated, never rounded.
func AverageColor(img *image.NRGBA, mode Mode) (RGB, error) {
	if img.Bounds().Empty() {
		return RGB{}, errors.New("cannot reduce an empty raster")
	}

	switch mode {
	case ModeDecay:
		return decayColor(img), nil
	case ModeMean:
		return meanColor(img), nil
	case ModeDominant:
		return rgbFromColor(dominantcolor.Find(img)), nil
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Reduce replaces the tile raster with a raster of the same size filled with
// its representative color and returns that color.
//
// Parameters:
//   - t: The tile to flatten. Its Image is replaced. The raster it held before
//     is not modified, so the source image of a slice is left intact.
//   - mode: How the color is computed. ModeDecay folds pixels column by column
//     into a running halfway average. ModeMean is the arithmetic mean.
//     ModeDominant is the largest color cluster. Components are truncated.
//
// Returns:
//   - RGB: The color the tile was filled with.
//   - error: Non-nil if the tile could not be reduced. The tile is unchanged.
//
// Reducing an already reduced tile yields the same color in ModeMean and
// ModeDominant. In ModeDecay the same holds once the tile has at least 54 pixels.
//
// # Errors
//
//   - Returns ErrUnknownMode if mode is not one of Modes()
//   - Returns an error if the tile raster is empty
func Reduce(t *Tile, mode Mode) (RGB, error) {
	c, err := AverageColor(t.Image, mode)
	if err != nil {
		return RGB{}, fmt.Errorf("failed to reduce tile #%d: %w", t.Number, err)
	}

	b := t.Image.Bounds()
	t.Image = imaging.Fill(b.Dx(), b.Dy(), c.NRGBA())
	return c, nil
}

// decayColor must iterate x outer, y inner: the result depends on order.
func decayColor(img *image.NRGBA) RGB {
	var r, g, b float64

	bounds := img.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := img.PixOffset(x, y)
			r = (r + float64(img.Pix[i])) / 2
			g = (g + float64(img.Pix[i+1])) / 2
			b = (b + float64(img.Pix[i+2])) / 2
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

func meanColor(img *image.NRGBA) RGB {
	bounds := img.Bounds()
	n := bounds.Dx() * bounds.Dy()
	rs := make([]float64, 0, n)
	gs := make([]float64, 0, n)
	bs := make([]float64, 0, n)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := img.PixOffset(x, y)
			rs = append(rs, float64(img.Pix[i]))
			gs = append(gs, float64(img.Pix[i+1]))
			bs = append(bs, float64(img.Pix[i+2]))
		}
	}
	return RGB{
		R: uint8(stat.Mean(rs, nil)),
		G: uint8(stat.Mean(gs, nil)),
		B: uint8(stat.Mean(bs, nil)),
	}
}
