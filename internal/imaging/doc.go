// Package imaging is the image I/O boundary of the mosaic tool.
//
// It decodes image files into rasters, encodes rasters back to disk, copies
// rectangular regions out of a raster and names the intermediate tile files.
// Everything above this package works on *image.NRGBA rasters only.
//
// # Rasters
//
// A raster produced by this package always has:
//   - its origin at (0,0)
//   - every pixel fully opaque (A = 255)
//   - pixel memory that it owns (no aliasing with the decoded source)
//
// Alpha is not supported. Translucent pixels are composited onto black when a
// decoded image is converted to a raster.
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner. For regions,
// (x1,y1) is inclusive and (x2,y2) is exclusive, matching image.Rectangle.
//
// # Error Handling
//
// Decoding failures wrap ErrUnreadableImage and write failures wrap
// ErrWriteError, so callers can classify them with errors.Is.
package imaging
