// Package mosaic splits a raster into a grid of tiles, reduces every tile to
// a single color and joins the tiles back into one raster.
//
// # Grid Layout
//
// For a requested tile count n and an image of W x H pixels:
//
//	columns    = ceil(sqrt(n))
//	rows       = ceil(n / columns)
//	tileWidth  = floor(W / columns)
//	tileHeight = floor(H / rows)
//
// columns*rows may exceed n. For n=3 the grid is 2x2 and four tiles are produced.
//
// # Coverage
//
// Tile sizes are truncated. Pixels in the right-most W - columns*tileWidth
// columns and the bottom-most H - rows*tileHeight rows belong to no tile and
// are not part of the joined result. A 101 pixel wide image split into two
// columns joins back to 100 pixels.
//
// # Ordering
//
// Tiles are numbered from 1 in row-major order. Grid positions are 1-based:
// the top-left tile is column 1, row 1.
//
// # Ownership
//
// Every tile holds its own copy of its pixels. Reducing a tile replaces that
// copy and never touches the source raster or any other tile, so tiles may be
// reduced concurrently.
package mosaic
