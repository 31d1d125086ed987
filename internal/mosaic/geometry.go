package mosaic

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var (
	// ErrInvalidTileCount is returned when fewer than one tile is requested.
	ErrInvalidTileCount = errors.New("tile count must be bigger than zero")

	// ErrDegenerateLayout is returned when the grid leaves tiles without pixels.
	ErrDegenerateLayout = errors.New("degenerate grid layout")
)

// GridLayout is the column/row arrangement of tiles over an image.
type GridLayout struct {
	Columns    int `json:"columns"`
	Rows       int `json:"rows"`
	TileWidth  int `json:"tile_width"`
	TileHeight int `json:"tile_height"`
}

// TileRect is one cell of a GridLayout.
type TileRect struct {
	Number int             // 1-based, row-major
	Column int             // 1-based
	Row    int             // 1-based
	Rect   image.Rectangle // pixel bounds in the source image
}

// GridSize returns the column and row count for n tiles.
func GridSize(n int) (columns, rows int) {
	columns = int(math.Ceil(math.Sqrt(float64(n))))
	rows = int(math.Ceil(float64(n) / float64(columns)))
	return columns, rows
}

// Plan computes the grid layout for requested tiles over a width x height
// image.
//
// Parameters:
//   - requested: The minimum number of tiles. The grid gets ceil(sqrt(requested))
//     columns and as many rows as needed to hold requested tiles, so the actual
//     count can be larger (5 gives a 3x2 grid of 6 tiles).
//   - width, height: The image size in pixels.
//
// Returns:
//   - GridLayout: The column and row counts and the floor-divided tile size.
//     The covered area is Columns*TileWidth x Rows*TileHeight. Pixels past it
//     on the right and bottom edges belong to no tile.
//   - error: Non-nil if no usable layout exists.
//
// # Errors
//
//   - Returns ErrInvalidTileCount if requested < 1
//   - Returns ErrDegenerateLayout if the image is too small to give every tile
//     at least one pixel in each direction
func Plan(requested, width, height int) (GridLayout, error) {
	if requested < 1 {
		return GridLayout{}, fmt.Errorf("%w: got %d", ErrInvalidTileCount, requested)
	}
	if width < 1 || height < 1 {
		return GridLayout{}, fmt.Errorf("%w: image is %dx%d", ErrDegenerateLayout, width, height)
	}

	columns, rows := GridSize(requested)
	layout := GridLayout{
		Columns:    columns,
		Rows:       rows,
		TileWidth:  width / columns,
		TileHeight: height / rows,
	}
	if layout.TileWidth < 1 || layout.TileHeight < 1 {
		return GridLayout{}, fmt.Errorf("%w: %dx%d image cannot hold a %dx%d grid",
			ErrDegenerateLayout, width, height, columns, rows)
	}
	return layout, nil
}

// Count returns the number of tiles in the layout.
func (g GridLayout) Count() int {
	return g.Columns * g.Rows
}

// Size returns the pixel size covered by the layout.
func (g GridLayout) Size() image.Point {
	return image.Pt(g.Columns*g.TileWidth, g.Rows*g.TileHeight)
}

// Position returns the 1-based grid position of the tile whose origin is (x, y).
func (g GridLayout) Position(x, y int) (column, row int) {
	return x/g.TileWidth + 1, y/g.TileHeight + 1
}

// Rects lists every tile rectangle in row-major order, numbered from 1.
//
// Iteration stops at the covered size, so remainder pixels never form an
// extra, narrower column or row.
func (g GridLayout) Rects() []TileRect {
	size := g.Size()
	rects := make([]TileRect, 0, g.Count())

	number := 1
	for y := 0; y < size.Y; y += g.TileHeight {
		for x := 0; x < size.X; x += g.TileWidth {
			column, row := g.Position(x, y)
			rects = append(rects, TileRect{
				Number: number,
				Column: column,
				Row:    row,
				Rect:   image.Rect(x, y, x+g.TileWidth, y+g.TileHeight),
			})
			number++
		}
	}
	return rects
}

func (g GridLayout) String() string {
	return fmt.Sprintf("%dx%d grid of %dx%d tiles", g.Columns, g.Rows, g.TileWidth, g.TileHeight)
}
