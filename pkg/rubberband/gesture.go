package rubberband

import "image"

// GestureState is the pointer bookkeeping of one drag.
type GestureState struct {
	Anchor      image.Point
	LastPointer image.Point
	Active      bool
}

// Tracker owns the GestureState of the current drag.
type Tracker struct {
	state GestureState
}

// Down starts a gesture anchored at p.
func (t *Tracker) Down(p image.Point) {
	t.state = GestureState{Anchor: p, LastPointer: p, Active: true}
}

// Move records p and returns the cumulative pointer movement since the
// anchor. It reports false and changes nothing when no gesture is active.
func (t *Tracker) Move(p image.Point) (image.Point, bool) {
	if !t.state.Active {
		return image.Point{}, false
	}
	t.state.LastPointer = p
	return p.Sub(t.state.Anchor), true
}

// Up ends the gesture. Anchor and last pointer are kept for inspection.
func (t *Tracker) Up() {
	t.state.Active = false
}

// State returns a copy of the gesture state.
func (t *Tracker) State() GestureState { return t.state }

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool { return t.state.Active }
