// Package replay drives the rubberband controller from a scripted TOML
// scenario against an in-memory canvas, for debugging gestures without a
// terminal.
package replay

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/wesen/rubberband/pkg/rubberband"
)

// ErrScenario is returned (wrapped) for malformed scenarios.
var ErrScenario = errors.New("replay: bad scenario")

// Scenario is a scripted gesture.
type Scenario struct {
	Zoom      float64   `toml:"zoom"`
	Container Container `toml:"container"`
	Engine    Engine    `toml:"engine"`
	Nodes     []Node    `toml:"node"`
	Steps     []Step    `toml:"step"`
}

// Container is the viewport size in pixels.
type Container struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Engine overrides the engine tuning. Unset values keep
// rubberband.DefaultConfig.
type Engine struct {
	EdgeThreshold *int   `toml:"edge_threshold"`
	PanSpeed      *int   `toml:"pan_speed"`
	MinSize       *int   `toml:"min_size"`
	TieBreak      string `toml:"tie_break"`
	Corner        string `toml:"corner"`
}

// Node is a selectable box in world coordinates.
type Node struct {
	Label string `toml:"label"`
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
	W     int    `toml:"w"`
	H     int    `toml:"h"`
}

// Step is one scripted event. Exactly one action field is set.
type Step struct {
	Down   []int `toml:"down"`
	Shift  bool  `toml:"shift"`
	Move   []int `toml:"move"`
	Frames int   `toml:"frames"`
	Up     bool  `toml:"up"`
	Leave  bool  `toml:"leave"`
}

// Kind names the step's action.
func (s Step) Kind() string {
	switch {
	case s.Down != nil:
		return "down"
	case s.Move != nil:
		return "move"
	case s.Frames > 0:
		return "frames"
	case s.Up:
		return "up"
	case s.Leave:
		return "leave"
	}
	return ""
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{s.Down != nil, s.Move != nil, s.Frames > 0, s.Up, s.Leave} {
		if set {
			n++
		}
	}
	return n
}

// Point returns the down or move coordinates.
func (s Step) Point() image.Point {
	p := s.Down
	if p == nil {
		p = s.Move
	}
	if len(p) != 2 {
		return image.Point{}
	}
	return image.Pt(p[0], p[1])
}

// Parse decodes and validates a scenario. Unknown keys are an error so
// that typos do not silently change a replay.
func Parse(data string) (*Scenario, error) {
	s := &Scenario{Zoom: 1}
	md, err := toml.Decode(data, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScenario, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrScenario, strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the container and steps.
func (s *Scenario) Validate() error {
	if s.Container.Width <= 0 || s.Container.Height <= 0 {
		return fmt.Errorf("%w: container needs a positive width and height", ErrScenario)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrScenario)
	}
	for i, st := range s.Steps {
		if st.actions() != 1 {
			return fmt.Errorf("%w: step %d must have exactly one of down, move, frames, up, leave", ErrScenario, i+1)
		}
		if (st.Down != nil && len(st.Down) != 2) || (st.Move != nil && len(st.Move) != 2) {
			return fmt.Errorf("%w: step %d: coordinates must be [x, y]", ErrScenario, i+1)
		}
	}
	for i, n := range s.Nodes {
		if n.W <= 0 || n.H <= 0 {
			return fmt.Errorf("%w: node %d has no size", ErrScenario, i+1)
		}
	}
	return nil
}

// EngineConfig merges the overrides into rubberband.DefaultConfig.
func (s *Scenario) EngineConfig() (rubberband.Config, error) {
	cfg := rubberband.DefaultConfig()
	if v := s.Engine.EdgeThreshold; v != nil {
		cfg.EdgeThreshold = *v
	}
	if v := s.Engine.PanSpeed; v != nil {
		cfg.PanSpeed = *v
	}
	if v := s.Engine.MinSize; v != nil {
		cfg.MinSize = *v
	}
	if err := cfg.Validate(); err != nil {
		return rubberband.Config{}, fmt.Errorf("%w: %w", ErrScenario, err)
	}
	return cfg, nil
}

// Resolver returns the tie-break policy named by the scenario.
func (s *Scenario) Resolver() (rubberband.EdgeResolver, error) {
	r, err := rubberband.ParseResolver(s.Engine.TieBreak, s.Engine.Corner)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScenario, err)
	}
	return r, nil
}
