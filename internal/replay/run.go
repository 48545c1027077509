package replay

import (
	"fmt"
	"image"

	"github.com/wesen/rubberband/pkg/rubberband"
)

// maxFrames bounds a single frames step.
const maxFrames = 10000

// Result is the state after one step or frame.
type Result struct {
	Step      int
	Kind      string
	Pointer   image.Point
	Rect      rubberband.Rect
	Screen    image.Rectangle
	Quadrant  rubberband.Quadrant
	Translate image.Point
	Delta     image.Point
	Flipped   bool
	Panning   bool
	// Commit is set on up and leave steps.
	Commit *rubberband.Commit
}

// Report is the outcome of a replay.
type Report struct {
	Results []Result
	// Translate is the canvas translation after the last step.
	Translate image.Point
	// Last is the last rectangle shown, in the overlay frame.
	Last      rubberband.Rect
	LastShown bool

	canvas *memCanvas
}

// Run replays s.
func Run(s *Scenario) (*Report, error) {
	cfg, err := s.EngineConfig()
	if err != nil {
		return nil, err
	}
	resolver, err := s.Resolver()
	if err != nil {
		return nil, err
	}
	canvas := newMemCanvas(s)
	ctrl, err := rubberband.NewController(canvas, cfg, rubberband.WithResolver(resolver))
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer ctrl.Close()

	rep := &Report{canvas: canvas}
	for i, st := range s.Steps {
		n := i + 1
		switch st.Kind() {
		case "down":
			var mods rubberband.Modifiers
			if st.Shift {
				mods |= rubberband.ModShift
			}
			ctrl.PointerDown(st.Point(), mods)
			rep.LastShown = false
			rep.add(ctrl, n, "down", rubberband.Sample{})

		case "move":
			if !ctrl.Active() {
				return nil, fmt.Errorf("%w: step %d: move without down", ErrScenario, n)
			}
			rep.add(ctrl, n, "move", ctrl.PointerMove(st.Point()))

		case "frames":
			for range min(st.Frames, maxFrames) {
				if !ctrl.Panning() {
					break
				}
				rep.add(ctrl, n, "frame", ctrl.Frame(ctrl.LoopGen()))
			}

		case "up", "leave":
			var c rubberband.Commit
			if st.Kind() == "up" {
				c = ctrl.PointerUp()
			} else {
				c = ctrl.PointerLeave()
			}
			r := Result{
				Step:      n,
				Kind:      st.Kind(),
				Rect:      c.Rect,
				Screen:    c.Screen,
				Translate: canvas.Translation(),
				Commit:    &c,
			}
			rep.Results = append(rep.Results, r)
			rep.LastShown = false
		}
	}
	rep.Translate = canvas.Translation()
	return rep, nil
}

func (r *Report) add(ctrl *rubberband.Controller, step int, kind string, s rubberband.Sample) {
	res := Result{
		Step:      step,
		Kind:      kind,
		Pointer:   ctrl.Gesture().LastPointer,
		Rect:      s.Rect,
		Screen:    s.Screen,
		Quadrant:  s.Quadrant,
		Translate: r.canvas.Translation(),
		Delta:     s.Delta,
		Flipped:   s.Flipped,
		Panning:   ctrl.Panning(),
	}
	if kind != "down" {
		r.Last = s.Rect
		r.LastShown = true
	}
	r.Results = append(r.Results, res)
}

// Commits returns the commits of the replay in order.
func (r *Report) Commits() []rubberband.Commit {
	var out []rubberband.Commit
	for _, res := range r.Results {
		if res.Commit != nil {
			out = append(out, *res.Commit)
		}
	}
	return out
}

// String formats a result as one report line.
func (res Result) String() string {
	if res.Commit != nil {
		return fmt.Sprintf("%3d %-6s screen=%v translate=%v selected=%v",
			res.Step, res.Kind, res.Screen, res.Translate, res.Commit.Selected)
	}
	if res.Kind == "down" {
		return fmt.Sprintf("%3d %-6s at=%v", res.Step, res.Kind, res.Pointer)
	}
	frozen := ""
	if res.Rect.Frozen {
		frozen = " frozen"
	}
	flip := ""
	if res.Flipped {
		flip = " flip"
	}
	return fmt.Sprintf("%3d %-6s at=%v rect=%d,%d %dx%d %s translate=%v delta=%v%s%s",
		res.Step, res.Kind, res.Pointer,
		res.Rect.Left, res.Rect.Top, res.Rect.Width, res.Rect.Height,
		res.Quadrant, res.Translate, res.Delta, frozen, flip)
}
