package pipeline

import (
	"errors"
	"testing"

	"github.com/ironsheep/tile-mosaic/internal/mosaic"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv(LogLevelEnv, "")
	cfg := DefaultConfig()

	if cfg.Mode != mosaic.ModeDecay {
		t.Errorf("Mode: got %q, want decay", cfg.Mode)
	}
	if cfg.Quality != 75 {
		t.Errorf("Quality: got %d, want 75", cfg.Quality)
	}
	if cfg.TileFormat != "jpg" {
		t.Errorf("TileFormat: got %q, want jpg", cfg.TileFormat)
	}
	if cfg.SaveTiles || cfg.Cleanup || cfg.Debug {
		t.Errorf("optional behavior should be off by default: %+v", cfg)
	}
}

func TestDefaultConfig_DebugFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnv, "DEBUG")

	if !DefaultConfig().Debug {
		t.Error("Debug should be enabled by the environment")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.ImagePath = "photo.jpg"
		cfg.TileCount = 4
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"missing path", func(c *Config) { c.ImagePath = "" }, ErrInvalidConfig},
		{"zero tiles", func(c *Config) { c.TileCount = 0 }, mosaic.ErrInvalidTileCount},
		{"negative tiles", func(c *Config) { c.TileCount = -3 }, mosaic.ErrInvalidTileCount},
		{"unknown mode", func(c *Config) { c.Mode = "median" }, mosaic.ErrUnknownMode},
		{"quality too low", func(c *Config) { c.Quality = 0 }, ErrInvalidConfig},
		{"quality too high", func(c *Config) { c.Quality = 101 }, ErrInvalidConfig},
		{"bad tile format", func(c *Config) { c.TileFormat = "gif" }, ErrInvalidConfig},
		{"png tiles", func(c *Config) { c.TileFormat = "PNG" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("New should reject an empty config")
	}
}

func TestState_String(t *testing.T) {
	want := []string{"pending", "decoding", "slicing", "reducing", "joining", "encoding", "done"}
	for i, name := range want {
		if got := State(i).String(); got != name {
			t.Errorf("State(%d): got %q, want %q", i, got, name)
		}
	}
	if got := State(42).String(); got != "state(42)" {
		t.Errorf("unknown state: got %q", got)
	}
}
