package pipeline

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/tile-mosaic/internal/imaging"
	"github.com/ironsheep/tile-mosaic/internal/mosaic"
)

// State is the step a pipeline run is in.
type State int

const (
	StatePending State = iota
	StateDecoding
	StateSlicing
	StateReducing
	StateJoining
	StateEncoding
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDecoding:
		return "decoding"
	case StateSlicing:
		return "slicing"
	case StateReducing:
		return "reducing"
	case StateJoining:
		return "joining"
	case StateEncoding:
		return "encoding"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result describes a finished run.
type Result struct {
	Layout       mosaic.GridLayout `json:"layout"`
	Colors       []mosaic.RGB      `json:"colors"` // one per tile, in sequence order
	OutputPath   string            `json:"output_path"`
	BytesWritten int64             `json:"bytes_written"`
	TileFiles    []string          `json:"tile_files,omitempty"`
	Removed      []string          `json:"removed,omitempty"`
}

// Pipeline turns one image into its tile mosaic.
//
// A run walks Decoding, Slicing, Reducing, Joining and Encoding in that order
// and ends in Done. Any failure stops the run in the state it happened in.
type Pipeline struct {
	cfg    Config
	logger *log.Logger
	state  State
}

// New validates cfg and returns a pipeline ready to Run.
func New(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Mode, _ = mosaic.ParseMode(string(cfg.Mode))

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger}, nil
}

// State reports where the last run got to.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the pipeline once.
//
// Errors are prefixed with the state that failed. When Cleanup is set, tile
// files written by this run are removed on every exit path.
func (p *Pipeline) Run(ctx context.Context) (res *Result, err error) {
	var tileFiles []string
	if p.cfg.Cleanup {
		defer func() {
			removed := p.cleanup(tileFiles)
			if res != nil {
				res.Removed = removed
			}
		}()
	}

	start := time.Now()
	p.state = StateDecoding
	if p.cfg.Debug {
		if info, err := imaging.Inspect(p.cfg.ImagePath); err == nil {
			p.logger.Printf("Input %s: %dx%d %s, %d bytes",
				p.cfg.ImagePath, info.Width, info.Height, info.Format, info.FileSizeBytes)
		}
	}
	src, err := imaging.Decode(p.cfg.ImagePath)
	if err != nil {
		return nil, p.fail(err)
	}

	p.state = StateSlicing
	layout, tiles, err := mosaic.Slice(src, p.cfg.TileCount)
	if err != nil {
		return nil, p.fail(err)
	}
	p.debugf("Sliced into %s", layout)

	if p.cfg.SaveTiles {
		dir := filepath.Dir(p.cfg.ImagePath)
		prefix := imaging.BaseName(p.cfg.ImagePath)
		err := mosaic.SaveTiles(tiles, dir, prefix, p.cfg.TileFormat, p.cfg.Quality)
		for _, t := range tiles {
			if t.Path != "" {
				tileFiles = append(tileFiles, t.Path)
			}
		}
		if err != nil {
			return nil, p.fail(err)
		}
		p.debugf("Saved %d tiles to %s", len(tileFiles), dir)
	}

	p.state = StateReducing
	colors, err := p.reduce(ctx, tiles)
	if err != nil {
		return nil, p.fail(err)
	}
	for i, t := range tiles {
		p.logger.Printf("Average color for part %s is %s", t, colors[i])
	}

	p.state = StateJoining
	joined, err := mosaic.Join(tiles)
	if err != nil {
		return nil, p.fail(err)
	}

	p.state = StateEncoding
	output := imaging.CompressedPath(p.cfg.ImagePath)
	n, err := imaging.Encode(joined, output, imaging.JPEG, p.cfg.Quality)
	if err != nil {
		return nil, p.fail(err)
	}

	p.state = StateDone
	p.debugf("Wrote %s (%d bytes) in %s", output, n, time.Since(start).Round(time.Millisecond))

	return &Result{
		Layout:       layout,
		Colors:       colors,
		OutputPath:   output,
		BytesWritten: n,
		TileFiles:    tileFiles,
	}, nil
}

// reduce reduces every tile, at most Workers at a time. Each goroutine only
// touches its own tile and its own slot in colors.
func (p *Pipeline) reduce(ctx context.Context, tiles []*mosaic.Tile) ([]mosaic.RGB, error) {
	colors := make([]mosaic.RGB, len(tiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())
	for i, t := range tiles {
		i, t := i, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := mosaic.Reduce(t, p.cfg.Mode)
			if err != nil {
				return err
			}
			colors[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return colors, nil
}

func (p *Pipeline) workers() int {
	if p.cfg.Workers > 0 {
		return p.cfg.Workers
	}
	return runtime.NumCPU()
}

func (p *Pipeline) fail(err error) error {
	return fmt.Errorf("%s: %w", p.state, err)
}

func (p *Pipeline) debugf(format string, args ...interface{}) {
	if p.cfg.Debug {
		p.logger.Printf(format, args...)
	}
}
