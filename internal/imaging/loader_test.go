package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createInMemoryImage creates a uniform RGBA image.
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with four colored quadrants:
// red top-left, green top-right, blue bottom-left, white bottom-right.
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255}
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255}
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255}
			} else {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// createTestImage writes a uniform PNG into a temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-image.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, createInMemoryImage(width, height, c)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestDecode(t *testing.T) {
	path := createTestImage(t, 40, 30, color.RGBA{10, 20, 30, 255})

	raster, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if raster.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Errorf("bounds: got %v, want (0,0)-(40,30)", raster.Bounds())
	}

	got := raster.NRGBAAt(5, 5)
	if got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("pixel (5,5): got %v, want {10 20 30 255}", got)
	}
}

func TestDecode_NonExistent(t *testing.T) {
	_, err := Decode("/nonexistent/path/to/image.png")
	if !errors.Is(err, ErrUnreadableImage) {
		t.Errorf("expected ErrUnreadableImage, got %v", err)
	}
}

func TestDecode_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("this is not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Decode(path)
	if !errors.Is(err, ErrUnreadableImage) {
		t.Errorf("expected ErrUnreadableImage, got %v", err)
	}
}

func TestToRaster_DropsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 255})
	img.SetNRGBA(1, 0, color.NRGBA{200, 100, 50, 0})

	raster := ToRaster(img)

	if got := raster.NRGBAAt(0, 0); got != (color.NRGBA{200, 100, 50, 255}) {
		t.Errorf("opaque pixel: got %v, want {200 100 50 255}", got)
	}
	// Fully transparent composites onto black.
	if got := raster.NRGBAAt(1, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("transparent pixel: got %v, want {0 0 0 255}", got)
	}
}

func TestToRaster_ResetsOrigin(t *testing.T) {
	src := createPatternImage(100, 100)
	sub := src.SubImage(image.Rect(50, 50, 100, 100))

	raster := ToRaster(sub)

	if raster.Bounds() != image.Rect(0, 0, 50, 50) {
		t.Fatalf("bounds: got %v, want (0,0)-(50,50)", raster.Bounds())
	}
	if got := raster.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("origin pixel: got %v, want white", got)
	}
}

func TestToRaster_OwnsPixels(t *testing.T) {
	src := createInMemoryImage(4, 4, color.RGBA{1, 2, 3, 255})
	raster := ToRaster(src)

	raster.SetNRGBA(0, 0, color.NRGBA{9, 9, 9, 255})

	if got := src.RGBAAt(0, 0); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("source was modified through raster: got %v", got)
	}
}

func TestInspect(t *testing.T) {
	path := createTestImage(t, 64, 48, color.RGBA{0, 0, 0, 255})

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if info.Width != 64 || info.Height != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestInspect_NonExistent(t *testing.T) {
	_, err := Inspect("/nonexistent/image.png")
	if !errors.Is(err, ErrUnreadableImage) {
		t.Errorf("expected ErrUnreadableImage, got %v", err)
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/photo.jpg", "photo"},
		{"photo.png", "photo"},
		{"dir/archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := BaseName(tt.path); got != tt.want {
				t.Errorf("BaseName(%q): got %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
