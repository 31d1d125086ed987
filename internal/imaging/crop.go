package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop copies the region r out of img into a new raster.
//
// The region is clipped against the image bounds first, so a rectangle that
// extends past the right or bottom edge yields only the pixels that exist.
// The returned raster never shares memory with img.
func Crop(img image.Image, r image.Rectangle) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
		return nil, fmt.Errorf("invalid crop region (%d,%d)-(%d,%d): x1 must be < x2, y1 must be < y2",
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	}
	if r.Intersect(bounds).Empty() {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	return imaging.Crop(img, r), nil
}
