// Package config loads the rubberband TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/wesen/rubberband/pkg/rubberband"
	"github.com/wesen/rubberband/pkg/viewport"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of
// range or unknown.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the rubberband configuration.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Canvas CanvasConfig `toml:"canvas"`
	Filter FilterConfig `toml:"filter"`
}

// EngineConfig tunes the drag engine. Units are terminal cells.
type EngineConfig struct {
	EdgeThreshold int    `toml:"edge_threshold"`
	PanSpeed      int    `toml:"pan_speed"`
	MinSize       int    `toml:"min_size"`
	TieBreak      string `toml:"tie_break"` // "closest", "first"
	Corner        string `toml:"corner"`    // "diagonal", "horizontal", "vertical"
}

// CanvasConfig controls the terminal canvas.
type CanvasConfig struct {
	Zoom    float64 `toml:"zoom"`
	GridX   int     `toml:"grid_x"`
	GridY   int     `toml:"grid_y"`
	FrameMS int     `toml:"frame_ms"`
}

// FilterConfig holds the default selection filter expression.
type FilterConfig struct {
	Expr string `toml:"expr"`
}

// Default returns the default configuration, tuned for terminal cells.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			EdgeThreshold: 3,
			PanSpeed:      2,
			MinSize:       2,
			TieBreak:      "closest",
			Corner:        "diagonal",
		},
		Canvas: CanvasConfig{Zoom: 1, GridX: 5, GridY: 3, FrameMS: 60},
	}
}

// Dir returns the rubberband config directory.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "rubberband")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error. An empty path means Path().
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists writes the defaults to path unless a file is already there.
// It reports whether a file was written.
func EnsureExists(path string) (bool, error) {
	if path == "" {
		path = Path()
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	return true, Save(Default(), path)
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := c.EngineConfig(); err != nil {
		return err
	}
	if _, err := c.Resolver(); err != nil {
		return err
	}
	if c.Canvas.Zoom < viewport.MinZoom || c.Canvas.Zoom > viewport.MaxZoom {
		return fmt.Errorf("%w: canvas.zoom %g outside [%g, %g]",
			ErrInvalid, c.Canvas.Zoom, viewport.MinZoom, viewport.MaxZoom)
	}
	if c.Canvas.GridX < 0 || c.Canvas.GridY < 0 {
		return fmt.Errorf("%w: canvas grid spacing must not be negative", ErrInvalid)
	}
	if c.Canvas.FrameMS <= 0 {
		return fmt.Errorf("%w: canvas.frame_ms must be positive", ErrInvalid)
	}
	return nil
}

// EngineConfig converts the [engine] table.
func (c *Config) EngineConfig() (rubberband.Config, error) {
	ec := rubberband.Config{
		EdgeThreshold: c.Engine.EdgeThreshold,
		PanSpeed:      c.Engine.PanSpeed,
		MinSize:       c.Engine.MinSize,
	}
	if err := ec.Validate(); err != nil {
		return rubberband.Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return ec, nil
}

// Resolver builds the edge tie-break policy named by the [engine] table.
func (c *Config) Resolver() (rubberband.EdgeResolver, error) {
	r, err := rubberband.ParseResolver(c.Engine.TieBreak, c.Engine.Corner)
	if err != nil {
		return nil, fmt.Errorf("%w: engine: %w", ErrInvalid, err)
	}
	return r, nil
}

// FrameInterval is the auto-pan frame period.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Canvas.FrameMS) * time.Millisecond
}
