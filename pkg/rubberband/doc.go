// Package rubberband implements the interaction engine behind a
// drag-to-select rectangle drawn over a pannable, zoomable canvas.
//
// A Controller owns one gesture at a time. Pointer samples go in through
// PointerDown, PointerMove and PointerUp (or PointerLeave); the controller
// keeps the selection rectangle anchored to the same canvas region while
// the viewport auto-pans underneath it whenever the pointer sits near a
// container edge.
//
// The engine never draws and never hit-tests. Both are delegated to the
// Canvas collaborator, which also owns the viewport translation. The
// auto-pan loop is not a goroutine: each step that wants another frame
// returns a generation number, and the host schedules a call to Frame with
// it (bubbletea's tea.Tick in this repository). Ending a gesture bumps the
// generation so frames already in flight become no-ops.
//
// The controller is not safe for concurrent use; drive it from a single
// event loop.
package rubberband
