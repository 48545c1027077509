package rubberband

// PanLoop is the cancellable repeating task that keeps auto-pan running
// while the pointer rests in an edge band.
//
// Every frame the host schedules carries the generation returned by Arm.
// Stop bumps the generation, so a frame already in flight when the loop is
// cancelled finds a mismatch in Valid and does nothing.
type PanLoop struct {
	gen    uint64
	active bool
}

// Arm starts the loop. It returns (gen, true) when a new loop was started
// and the caller must schedule the first frame, or (0, false) when a loop
// is already running.
func (l *PanLoop) Arm() (uint64, bool) {
	if l.active {
		return 0, false
	}
	l.active = true
	l.gen++
	return l.gen, true
}

// Valid reports whether a frame stamped with gen should still run.
func (l *PanLoop) Valid(gen uint64) bool {
	return l.active && gen == l.gen
}

// Stop cancels the loop and invalidates outstanding frames.
func (l *PanLoop) Stop() {
	l.active = false
	l.gen++
}

// Active reports whether the loop is running.
func (l *PanLoop) Active() bool { return l.active }

// Gen returns the current generation.
func (l *PanLoop) Gen() uint64 { return l.gen }
