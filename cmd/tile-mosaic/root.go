package main

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/tile-mosaic/internal/imaging"
	"github.com/ironsheep/tile-mosaic/internal/mosaic"
	"github.com/ironsheep/tile-mosaic/internal/pipeline"
)

// ErrInvalidArguments is returned for missing or malformed positional arguments.
var ErrInvalidArguments = errors.New("invalid arguments")

type options struct {
	cleanup    bool
	saveTiles  bool
	tileFormat string
	mode       string
	workers    int
	quality    int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tile-mosaic [flags] <image_path> <tile_count>",
		Short: "Flatten an image into a mosaic of single-color tiles",
		Long: `tile-mosaic splits an image into a grid of at least tile_count tiles,
replaces every tile with its average color and writes the result as a JPEG
to <image_path>_compressed.

The grid has ceil(sqrt(tile_count)) columns. Pixels left over when the image
size is not a multiple of the tile size are dropped from the output.

Flags go before <image_path>. Everything after it is positional, so a
negative tile_count is reported as an invalid count rather than a flag.

Environment variables:
  ` + pipeline.LogLevelEnv + `=debug    Enable debug logging`,
		Version:       Version,
		Args:          validateArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid past this point; failures are not usage errors.
			cmd.SilenceUsage = true
			return runMosaic(cmd, args, opts)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("tile-mosaic %s\n  Build time: %s\n  Git commit: %s\n",
		Version, BuildTime, GitCommit))
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	})

	modes := make([]string, 0, len(mosaic.Modes()))
	for _, m := range mosaic.Modes() {
		modes = append(modes, string(m))
	}

	f := cmd.Flags()
	f.SetInterspersed(false)
	f.BoolVar(&opts.cleanup, "cleanup", false,
		"delete the tile files written by this run (only those; never the input)")
	f.BoolVar(&opts.saveTiles, "save-tiles", false,
		"write every tile next to the input as <name>_<col>_<row>.<format>")
	f.StringVar(&opts.tileFormat, "tile-format", "jpg", "format of saved tiles: jpg, png or bmp")
	f.StringVar(&opts.mode, "mode", string(mosaic.ModeDecay),
		"color reduction: "+strings.Join(modes, ", ")+" (decay weighs later pixels more; mean is the true average)")
	f.IntVar(&opts.workers, "workers", 0, "tiles reduced in parallel (0 = one per CPU)")
	f.IntVar(&opts.quality, "quality", imaging.DefaultQuality, "JPEG quality, 1-100")

	return cmd
}

// validateArgs checks the positional arguments before anything is read or
// written. Extra arguments are rejected: with flags parsed only up to the image
// path, a misplaced flag such as "img.png 4 --cleanup" would otherwise be
// ignored silently.
func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected <image_path> <tile_count>, got %d argument(s)",
			ErrInvalidArguments, len(args))
	}
	_, err := parseTileCount(args[1])
	return err
}

func parseTileCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: tile_count %q is not a number", ErrInvalidArguments, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: got %d", mosaic.ErrInvalidTileCount, n)
	}
	return n, nil
}

func runMosaic(cmd *cobra.Command, args []string, opts *options) error {
	n, err := parseTileCount(args[1])
	if err != nil {
		return err
	}
	mode, err := mosaic.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	cfg := pipeline.DefaultConfig()
	cfg.ImagePath = args[0]
	cfg.TileCount = n
	cfg.Mode = mode
	cfg.Workers = opts.workers
	cfg.Quality = opts.quality
	cfg.SaveTiles = opts.saveTiles
	cfg.TileFormat = opts.tileFormat
	cfg.Cleanup = opts.cleanup

	if cfg.Debug {
		log.Printf("tile-mosaic v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	res, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d bytes\n", res.OutputPath, res.Layout, res.BytesWritten)
	return nil
}
