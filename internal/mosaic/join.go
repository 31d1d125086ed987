package mosaic

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

var (
	// ErrEmptyTileSet is returned when Join is given no tiles.
	ErrEmptyTileSet = errors.New("no tiles to join")

	// ErrTileOutOfBounds is returned when a tile does not fit on the canvas.
	// It means the tiles were not produced by one consistent layout.
	ErrTileOutOfBounds = errors.New("tile outside canvas")
)

// CanvasSize returns the size of the raster Join produces for tiles: the
// largest column and row multiplied by the size of that tile.
func CanvasSize(tiles []*Tile) (image.Point, error) {
	if len(tiles) == 0 {
		return image.Point{}, ErrEmptyTileSet
	}

	last := tiles[0]
	for _, t := range tiles[1:] {
		if t.Row > last.Row || (t.Row == last.Row && t.Column > last.Column) {
			last = t
		}
	}
	maxColumn, maxRow := 0, 0
	for _, t := range tiles {
		maxColumn = max(maxColumn, t.Column)
		maxRow = max(maxRow, t.Row)
	}

	size := last.Image.Bounds().Size()
	return image.Pt(maxColumn*size.X, maxRow*size.Y), nil
}

// Join pastes every tile at its origin on a new raster of CanvasSize.
//
// Parameters:
//   - tiles: The tiles to reassemble, in any order. Each tile is drawn at its
//     Origin, and tiles never overlap, so the result does not depend on order.
//
// Returns:
//   - *image.NRGBA: A new raster whose size is the covered area of the grid.
//     Remainder pixels of the original image are not restored.
//   - error: Non-nil if the tiles cannot be placed.
//
// The tiles are only read. Their rasters are copied into the result.
//
// # Errors
//
//   - Returns ErrEmptyTileSet if tiles is empty
//   - Returns ErrTileOutOfBounds if a tile would extend past the canvas
func Join(tiles []*Tile) (*image.NRGBA, error) {
	size, err := CanvasSize(tiles)
	if err != nil {
		return nil, err
	}

	canvas := image.NewNRGBA(image.Rectangle{Max: size})
	for _, t := range tiles {
		r := t.Bounds()
		if !r.In(canvas.Bounds()) {
			return nil, fmt.Errorf("%w: tile #%d covers %v, canvas is %v",
				ErrTileOutOfBounds, t.Number, r, canvas.Bounds())
		}
		draw.Draw(canvas, r, t.Image, t.Image.Bounds().Min, draw.Src)
	}
	return canvas, nil
}
