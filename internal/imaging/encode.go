package imaging

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// Format identifies an output encoding.
type Format = imaging.Format

// Output formats understood by Encode.
const (
	JPEG = imaging.JPEG
	PNG  = imaging.PNG
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 75

// countingWriter records how many bytes pass through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// Encode writes img to path in the given format and returns the number of
// bytes written. The format is explicit because the output path does not
// have to carry an image extension.
//
// The file is closed on every exit path and a failing Close is reported. When
// encoding or closing fails the partial file is removed, so a failed call
// leaves nothing at path.
func Encode(img image.Image, path string, format Format, quality int) (n int64, err error) {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrWriteError, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	cw := &countingWriter{w: f}
	if err := imaging.Encode(cw, img, format, imaging.JPEGQuality(quality)); err != nil {
		return cw.n, fmt.Errorf("%w: failed to encode %s: %v", ErrWriteError, path, err)
	}
	return cw.n, nil
}

// SaveTile writes a tile raster to path, picking the encoder from the file
// extension. Supported extensions are jpg, jpeg, png and bmp.
func SaveTile(img image.Image, path string, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}

	var enc imgio.Encoder
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "jpg", "jpeg":
		enc = imgio.JPEGEncoder(quality)
	case "png":
		enc = imgio.PNGEncoder()
	case "bmp":
		enc = imgio.BMPEncoder()
	default:
		return fmt.Errorf("%w: unsupported tile format %q", ErrWriteError, filepath.Ext(path))
	}

	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteError, err)
	}
	return nil
}

// TileFilename builds the persisted name of the tile at the given 1-based
// grid position: <prefix>_<column:03d>_<row:03d>.<ext>, inside dir.
func TileFilename(dir, prefix string, column, row int, ext string) string {
	name := fmt.Sprintf("%s_%03d_%03d.%s", prefix, column, row, strings.TrimPrefix(ext, "."))
	return filepath.Join(dir, name)
}

// CompressedPath returns the path of the reassembled output for input.
func CompressedPath(input string) string {
	return input + "_compressed"
}
