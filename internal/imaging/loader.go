package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

var (
	// ErrUnreadableImage is returned when a path cannot be opened or decoded.
	ErrUnreadableImage = errors.New("unreadable image")

	// ErrWriteError is returned when an image cannot be written to disk.
	ErrWriteError = errors.New("write error")
)

// Decode loads the image at path and returns it as an owned, opaque raster.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     the ones registered by disintegration/imaging: JPEG, PNG, GIF, TIFF and BMP.
//
// Returns:
//   - *image.NRGBA: The decoded pixels with bounds starting at (0,0). EXIF
//     orientation is not applied. Translucent pixels are composited onto black
//     and every alpha value is 255.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The returned raster shares no memory with any other image, so callers may
// modify it freely.
//
// # Errors
//
//   - Returns ErrUnreadableImage if the file does not exist or cannot be read
//   - Returns ErrUnreadableImage if the file is not an image in a supported format
func Decode(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}
	return ToRaster(img), nil
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension, or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Inspect reads the header of the image at path and reports its metadata
// without decoding the pixel data.
func Inspect(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	return &ImageInfo{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}

// BaseName returns the file name of path without directory and extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
