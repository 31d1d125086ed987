package mosaic

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/ironsheep/tile-mosaic/internal/imaging"
)

// Tile is one rectangular piece of a source raster.
//
// Image is owned by the tile. Reduction swaps it for a uniform raster of the
// same size; nothing else about a tile changes after Slice, except Path which
// is set once the tile has been saved.
type Tile struct {
	Image  *image.NRGBA
	Number int         // sequence number, 1-based row-major
	Column int         // 1-based grid column
	Row    int         // 1-based grid row
	Origin image.Point // top-left corner in the source image
	Path   string      // persisted file, empty if never saved
}

// Bounds returns the pixel rectangle the tile covers in the source image.
func (t *Tile) Bounds() image.Rectangle {
	return t.Image.Bounds().Add(t.Origin)
}

// Filename returns the path this tile is saved under in dir.
func (t *Tile) Filename(dir, prefix, ext string) string {
	return imaging.TileFilename(dir, prefix, t.Column, t.Row, ext)
}

// Save writes the tile raster to path and records it in Path.
func (t *Tile) Save(path string, quality int) error {
	if err := imaging.SaveTile(t.Image, path, quality); err != nil {
		return fmt.Errorf("failed to save tile #%d: %w", t.Number, err)
	}
	t.Path = path
	return nil
}

func (t *Tile) String() string {
	if t.Path != "" {
		return fmt.Sprintf("<Tile #%d - %s>", t.Number, filepath.Base(t.Path))
	}
	return fmt.Sprintf("<Tile #%d>", t.Number)
}
