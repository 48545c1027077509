package rubberband

import (
	"fmt"
	"image"
)

// Overlay is the presentational rectangle element. Draw receives the
// rectangle in the overlay frame; it is never read back.
type Overlay interface {
	Draw(r Rect)
}

// Sample is what one pointer-move or frame produced.
type Sample struct {
	Rect Rect
	// Screen is Rect in current screen coordinates, after this sample's
	// pan step.
	Screen image.Rectangle
	// Region is the rectangle without the freeze, in current screen
	// coordinates.
	Region   image.Rectangle
	Quadrant Quadrant
	Flipped  bool
	// Delta is the edge trigger's pan step for this sample, whether or
	// not it was applied.
	Delta image.Point
	// Applied is set when TranslateBy was called.
	Applied bool
	// Frame is non-zero when the host must schedule a call to Frame with
	// this generation.
	Frame uint64
}

// Commit is the outcome of a finished gesture.
type Commit struct {
	Screen    image.Rectangle
	Rect      Rect
	Translate image.Point
	// Canvas is the canvas' absolute translation when the gesture ended,
	// including any pan from before pointer-down.
	Canvas   image.Point
	Mods     Modifiers
	Selected []int
	// Moved is false when the gesture ended before any pointer-move.
	Moved bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithOverlay sets the overlay element to write rectangles to.
func WithOverlay(o Overlay) Option {
	return func(c *Controller) { c.overlay = o }
}

// WithResolver replaces the edge tie-break policy.
func WithResolver(r EdgeResolver) Option {
	return func(c *Controller) { c.trigger.Resolver = r }
}

// WithGeometry replaces the quadrant geometry.
func WithGeometry(g Geometry) Option {
	return func(c *Controller) { c.synth.Geometry = g }
}

// WithGate replaces the pan gate.
func WithGate(g PanGate) Option {
	return func(c *Controller) { c.gate = g }
}

// Controller owns one drag gesture: its GestureState, PanState and the
// synthesizer's FreezeMemo.
type Controller struct {
	cfg     Config
	acc     *Accessor
	tracker Tracker
	trigger EdgeTrigger
	synth   Synthesizer
	gate    PanGate
	loop    PanLoop
	overlay Overlay

	pan      PanState
	mods     Modifiers
	last     Synthesis
	rendered bool
}

// NewController builds a controller over canvas.
func NewController(canvas Canvas, cfg Config, opts ...Option) (*Controller, error) {
	if canvas == nil {
		return nil, fmt.Errorf("rubberband: nil canvas")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg: cfg,
		acc: NewAccessor(canvas),
		trigger: EdgeTrigger{
			Threshold: cfg.EdgeThreshold,
			Speed:     cfg.PanSpeed,
			Resolver:  ClosestEdge{},
		},
		synth: Synthesizer{MinSize: cfg.MinSize, Geometry: QuadrantGeometry{}},
		gate:  SizeGate{},
		pan:   PanState{Zoom: 1},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the controller configuration.
func (c *Controller) Config() Config { return c.cfg }

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool { return c.tracker.Active() }

// Gesture returns the gesture state.
func (c *Controller) Gesture() GestureState { return c.tracker.State() }

// Pan returns the pan state of the current gesture.
func (c *Controller) Pan() PanState { return c.pan }

// Last returns the most recent synthesis and whether one exists for the
// current gesture.
func (c *Controller) Last() (Synthesis, bool) { return c.last, c.rendered }

// Panning reports whether the auto-pan loop is running.
func (c *Controller) Panning() bool { return c.loop.Active() }

// LoopGen returns the current pan loop generation.
func (c *Controller) LoopGen() uint64 { return c.loop.Gen() }

// PointerDown starts a gesture at p. A gesture already in progress is torn
// down first without committing.
func (c *Controller) PointerDown(p image.Point, mods Modifiers) {
	if c.tracker.Active() {
		c.teardown()
	}
	c.tracker.Down(p)
	c.synth.Reset()
	c.pan = PanState{Zoom: c.acc.Snapshot()}
	c.mods = mods
	c.last = Synthesis{}
	c.rendered = false
	Logger().Debug("rubberband: gesture start", "anchor", p, "zoom", c.pan.Zoom)
}

// PointerMove feeds one pointer sample. It is a no-op outside a gesture.
func (c *Controller) PointerMove(p image.Point) Sample {
	if _, ok := c.tracker.Move(p); !ok {
		return Sample{}
	}
	return c.step()
}

// Frame runs one scheduled auto-pan frame. Stale generations, frames after
// the gesture ended and frames after the pointer left the edge band do
// nothing and return a zero Sample.
func (c *Controller) Frame(gen uint64) Sample {
	if !c.tracker.Active() || !c.loop.Valid(gen) {
		return Sample{}
	}
	s := c.step()
	if c.loop.Valid(gen) {
		s.Frame = gen
	}
	return s
}

// step evaluates proximity, synthesizes the rectangle, then pans. The
// overlay therefore never shows a pan that has not been requested yet.
func (c *Controller) step() Sample {
	st := c.tracker.State()
	delta := c.trigger.Delta(st.LastPointer, c.acc.Bounds(), c.pan.Zoom)

	syn := c.synth.Synthesize(st.Anchor, st.LastPointer, c.pan.Translate)
	if syn.FreezeStarted {
		Logger().Debug("rubberband: freeze", "left", syn.Rect.Left, "top", syn.Rect.Top)
	}
	if syn.FreezeLifted {
		Logger().Debug("rubberband: unfreeze", "width", syn.Rect.Width, "height", syn.Rect.Height)
	}
	c.last = syn
	c.rendered = true
	if c.overlay != nil {
		c.overlay.Draw(syn.Rect)
	}

	s := Sample{
		Rect:     syn.Rect,
		Quadrant: syn.Quadrant,
		Flipped:  syn.Flipped,
		Delta:    delta,
	}

	if delta == (image.Point{}) {
		if c.loop.Active() {
			c.loop.Stop()
			Logger().Debug("rubberband: pan loop stopped", "translate", c.pan.Translate)
		}
	} else {
		if c.gate.Allow(syn, c.cfg.EdgeThreshold) {
			c.acc.TranslateBy(delta)
			c.pan.Translate = c.pan.Translate.Add(delta)
			s.Applied = true
		}
		if gen, ok := c.loop.Arm(); ok {
			s.Frame = gen
			Logger().Debug("rubberband: pan loop armed", "gen", gen, "delta", delta)
		}
	}

	s.Screen = syn.Rect.Screen(c.pan.Translate)
	s.Region = syn.Region.Screen(c.pan.Translate)
	return s
}

// PointerUp ends the gesture and commits the selection.
func (c *Controller) PointerUp() Commit {
	return c.end("up")
}

// PointerLeave is PointerUp for a pointer that left the tracking surface.
func (c *Controller) PointerLeave() Commit {
	return c.end("leave")
}

// Close tears down any gesture without committing. Call it when the host
// component goes away.
func (c *Controller) Close() {
	if c.tracker.Active() {
		c.teardown()
		Logger().Debug("rubberband: gesture closed")
	}
	c.loop.Stop()
}

func (c *Controller) end(reason string) Commit {
	if !c.tracker.Active() {
		return Commit{}
	}
	st := c.tracker.State()
	commit := Commit{
		Translate: c.pan.Translate,
		Mods:      c.mods,
		Moved:     c.rendered,
	}
	if c.rendered {
		// Selection ignores the freeze and folds in the last pan step.
		commit.Rect = c.synth.Region(st.Anchor, st.LastPointer, c.pan.Translate)
	} else {
		commit.Rect = Rect{Left: st.Anchor.X, Top: st.Anchor.Y}
	}
	commit.Screen = commit.Rect.Screen(c.pan.Translate)
	commit.Canvas = c.acc.Translation()
	c.teardown()
	commit.Selected = c.acc.canvas.SelectInRect(commit.Screen, commit.Mods)
	Logger().Debug("rubberband: gesture end", "reason", reason,
		"screen", commit.Screen, "translate", commit.Translate,
		"canvas", commit.Canvas, "selected", len(commit.Selected))
	return commit
}

func (c *Controller) teardown() {
	c.loop.Stop()
	c.tracker.Up()
	c.synth.Reset()
	c.pan = PanState{Zoom: c.pan.Zoom}
	c.rendered = false
}
