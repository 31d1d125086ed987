package mosaic

import (
	"fmt"
	"image"

	"github.com/ironsheep/tile-mosaic/internal/imaging"
)

// Slice plans a grid for requested tiles over src and copies each cell into
// its own Tile. Tiles are returned in sequence order.
func Slice(src image.Image, requested int) (GridLayout, []*Tile, error) {
	bounds := src.Bounds()
	layout, err := Plan(requested, bounds.Dx(), bounds.Dy())
	if err != nil {
		return GridLayout{}, nil, err
	}

	rects := layout.Rects()
	tiles := make([]*Tile, 0, len(rects))
	for _, r := range rects {
		img, err := imaging.Crop(src, r.Rect.Add(bounds.Min))
		if err != nil {
			return GridLayout{}, nil, fmt.Errorf("failed to slice tile #%d: %w", r.Number, err)
		}
		tiles = append(tiles, &Tile{
			Image:  img,
			Number: r.Number,
			Column: r.Column,
			Row:    r.Row,
			Origin: r.Rect.Min,
		})
	}
	return layout, tiles, nil
}

// SaveTiles writes every tile into dir as <prefix>_<col>_<row>.<ext>.
// It stops at the first failure; tiles saved before it keep their Path.
func SaveTiles(tiles []*Tile, dir, prefix, ext string, quality int) error {
	for _, t := range tiles {
		if err := t.Save(t.Filename(dir, prefix, ext), quality); err != nil {
			return err
		}
	}
	return nil
}
