package rubberband

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("rubberband: invalid config")

// Config holds the tuning constants of the engine. All values are in
// screen pixels (terminal cells in the TUI host).
type Config struct {
	// EdgeThreshold is the distance from a container edge inside which
	// auto-pan triggers. It also gates panning: the rectangle must be
	// wider and taller than EdgeThreshold before the viewport moves.
	EdgeThreshold int
	// PanSpeed is the pan step per frame before zoom scaling.
	PanSpeed int
	// MinSize is the freeze threshold: while both rectangle dimensions
	// are <= MinSize the rectangle position is held.
	MinSize int
}

// DefaultConfig returns the reference tuning: 30px edge band, 6px/frame,
// 100px freeze threshold.
func DefaultConfig() Config {
	return Config{
		EdgeThreshold: 30,
		PanSpeed:      6,
		MinSize:       100,
	}
}

// Validate reports negative values. Zero is allowed everywhere: a zero
// threshold disables auto-pan, a zero speed makes it a no-op and a zero
// MinSize only freezes a fully collapsed rectangle.
func (c Config) Validate() error {
	if c.EdgeThreshold < 0 {
		return fmt.Errorf("%w: edge threshold %d < 0", ErrInvalidConfig, c.EdgeThreshold)
	}
	if c.PanSpeed < 0 {
		return fmt.Errorf("%w: pan speed %d < 0", ErrInvalidConfig, c.PanSpeed)
	}
	if c.MinSize < 0 {
		return fmt.Errorf("%w: min size %d < 0", ErrInvalidConfig, c.MinSize)
	}
	return nil
}
