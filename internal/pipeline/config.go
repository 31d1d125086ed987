package pipeline

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ironsheep/tile-mosaic/internal/imaging"
	"github.com/ironsheep/tile-mosaic/internal/mosaic"
)

// LogLevelEnv enables debug logging when set to "debug".
const LogLevelEnv = "TILE_MOSAIC_LOG_LEVEL"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes one pipeline run.
type Config struct {
	// ImagePath is the input image.
	ImagePath string

	// TileCount is the requested number of tiles; the grid may hold more.
	TileCount int

	// Mode selects the color reduction.
	Mode mosaic.Mode

	// Workers bounds how many tiles are reduced at once. Zero or less means
	// one per CPU.
	Workers int

	// Quality is the JPEG quality for the output and for jpg tiles.
	Quality int

	// SaveTiles writes every tile next to the input before reduction.
	SaveTiles bool

	// TileFormat is the extension of saved tiles: jpg, jpeg, png or bmp.
	TileFormat string

	// Cleanup deletes the tile files written by this run once it finishes.
	// Only files recorded on the tiles are removed; the input never is.
	Cleanup bool

	// Debug enables additional log lines.
	Debug bool

	// Logger receives progress lines. Nil means the standard logger.
	Logger *log.Logger
}

// DefaultConfig returns a Config with every option at its default and
// debug logging taken from the environment.
func DefaultConfig() Config {
	return Config{
		Mode:       mosaic.ModeDecay,
		Quality:    imaging.DefaultQuality,
		TileFormat: "jpg",
		Debug:      strings.EqualFold(os.Getenv(LogLevelEnv), "debug"),
	}
}

// Validate checks the config before any file is touched.
func (c Config) Validate() error {
	if c.ImagePath == "" {
		return fmt.Errorf("%w: image path is required", ErrInvalidConfig)
	}
	if c.TileCount < 1 {
		return fmt.Errorf("%w: got %d", mosaic.ErrInvalidTileCount, c.TileCount)
	}
	if _, err := mosaic.ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality must be between 1 and 100, got %d", ErrInvalidConfig, c.Quality)
	}
	switch strings.ToLower(c.TileFormat) {
	case "jpg", "jpeg", "png", "bmp":
	default:
		return fmt.Errorf("%w: unsupported tile format %q", ErrInvalidConfig, c.TileFormat)
	}
	return nil
}
