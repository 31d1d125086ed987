package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
)

// ToRaster copies img into a new opaque raster with its origin at (0,0).
//
// The copy goes through a premultiplied RGBA buffer, so translucent pixels
// end up composited onto black before the alpha channel is forced to 255.
func ToRaster(img image.Image) *image.NRGBA {
	rgba := clone.AsRGBA(img)
	raster := &image.NRGBA{
		Pix:    rgba.Pix,
		Stride: rgba.Stride,
		Rect:   rgba.Rect.Sub(rgba.Rect.Min),
	}
	for i := 3; i < len(raster.Pix); i += 4 {
		raster.Pix[i] = 0xff
	}
	return raster
}

// Fill returns a width x height raster where every pixel is c.
func Fill(width, height int, c color.Color) *image.NRGBA {
	return imaging.New(width, height, c)
}
